package models

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	IconPath  string    `json:"icon_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the channel view of a user shown to everyone.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Username    string    `json:"username"`
	IconPath    string    `json:"icon_path"`
	Subscribers int64     `json:"subscribers"`
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)

type UserRegistrationRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
}

var ValidatePassword validation.RuleFunc = func(value interface{}) error {
	s, _ := value.(string)
	if match, _ := regexp.MatchString(`[A-Za-z]`, s); !match {
		return errors.New("must contain at least one letter")
	}
	if match, _ := regexp.MatchString(`\d`, s); !match {
		return errors.New("must contain at least one digit")
	}
	return nil
}

func (urr UserRegistrationRequest) Validate() error {
	err := validation.ValidateStruct(&urr,
		validation.Field(&urr.FirstName, validation.Required.Error("first_name is required"),
			validation.Length(1, 64)),
		validation.Field(&urr.LastName, validation.Required.Error("last_name is required"),
			validation.Length(1, 64)),
		validation.Field(&urr.Username, validation.Required.Error("username is required"),
			validation.Length(3, 32), validation.Match(usernameRegex).Error("invalid username")),
		validation.Field(&urr.Email, validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format")),
		validation.Field(&urr.Password, validation.Required.Error("password is required"),
			validation.Length(6, 72).Error("password length must be between 6 and 72"), validation.By(ValidatePassword)),
	)
	if err == nil {
		return nil
	}
	return errors.Join(err, ErrInvalidInputData)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (lr LoginRequest) Validate() error {
	err := validation.ValidateStruct(&lr,
		validation.Field(&lr.Email, validation.Required.Error("email is required")),
		validation.Field(&lr.Password, validation.Required.Error("password is required")),
	)
	if err == nil {
		return nil
	}
	return errors.Join(err, ErrInvalidInputData)
}

// UpdateUserRequest carries the optional profile fields of PATCH /me.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	IconPath  *string `json:"icon_path"`
}

func (u UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(&u,
		validation.Field(&u.FirstName, validation.NilOrNotEmpty, validation.Length(1, 64)),
		validation.Field(&u.LastName, validation.NilOrNotEmpty, validation.Length(1, 64)),
		validation.Field(&u.Username, validation.NilOrNotEmpty, validation.Length(3, 32),
			validation.Match(usernameRegex).Error("invalid username")),
	)
	if err == nil {
		return nil
	}
	return errors.Join(err, ErrInvalidInputData)
}
