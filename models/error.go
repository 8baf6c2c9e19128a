package models

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrResourceNotFound       = errors.New("resource not found")
	ErrInvalidEmailOrPassword = errors.New("invalid email or password")
	ErrInvalidInputData       = errors.New("invalid input data")
)

// ErrorKind is the closed set of failure classes a request can end with.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Status returns the HTTP status code for the kind.
func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a tagged error: Message is what the client sees, everything else is for the logs.
type Error struct {
	Kind        ErrorKind `json:"-"`
	Code        int       `json:"code"`
	Message     string    `json:"message"`
	Description string    `json:"description"`
	Params      string    `json:"params"`
	Err         error     `json:"-"`
}

func (a Error) Error() string {
	return fmt.Sprintf("%d: %s: %s: %s: %+v", a.Code, a.Message, a.Description, a.Params, a.Err)
}

func (a Error) Unwrap() error {
	return a.Err
}

func (e Error) AddParams(params string) Error {
	e.Params += params
	return e
}

func (e Error) WithDescription(desc string) Error {
	e.Description = desc
	return e
}

func NewError(kind ErrorKind, message string, err error) Error {
	return Error{
		Kind:    kind,
		Code:    kind.Status(),
		Message: message,
		Err:     err,
	}
}

func ErrMissingParameter() Error {
	return NewError(KindValidation, "missing parameter", nil)
}

func ErrInvalidParameter() Error {
	return NewError(KindValidation, "invalid parameter", nil)
}

// BadRequest is a validation error with a caller-chosen message such as "invalid video".
func BadRequest(message string) Error {
	return NewError(KindValidation, message, nil)
}

// NotFound builds the "<kind> not found" error raised by existence guards.
func NotFound(entity EntityKind) Error {
	return NewError(KindNotFound, fmt.Sprintf("%s not found", entity), ErrResourceNotFound)
}

func Unauthorized(description string, err error) Error {
	return Error{
		Kind:        KindUnauthorized,
		Code:        http.StatusUnauthorized,
		Message:     "access denied",
		Description: description,
		Err:         err,
	}
}

func Forbidden(description string) Error {
	return Error{
		Kind:        KindForbidden,
		Code:        http.StatusForbidden,
		Message:     "forbidden",
		Description: description,
		Err:         errors.New(description),
	}
}

func Internal(description string, err error) Error {
	return Error{
		Kind:        KindInternal,
		Code:        http.StatusInternalServerError,
		Message:     "internal server error",
		Description: description,
		Err:         err,
	}
}

// IdentifyDbError classifies a data-layer failure into a tagged error.
func IdentifyDbError(err error) Error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return NewError(KindNotFound, "resource not found", err)
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		return NewError(KindConflict, "resource already exists", err).WithDescription(pgErr.ConstraintName)
	case errors.As(err, &pgErr) && pgErr.Code == "23503":
		return NewError(KindNotFound, "resource not found", err).WithDescription(pgErr.ConstraintName)
	default:
		return Internal("database failure", err)
	}
}
