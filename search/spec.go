// Package search turns validated request parameters into a list of
// predicates plus ordering and paging, and renders that list as SQL.
package search

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"video-sharing/validation"
)

const (
	DefaultLimit = 30
	MaxLimit     = 100
)

// Column is a filterable field. Only columns known to this package can be
// rendered, so request input never reaches SQL text.
type Column string

const (
	ColTitle      Column = "title"
	ColDuration   Column = "duration"
	ColUploadedAt Column = "uploaded_at"
	ColCategory   Column = "category"
	ColUploader   Column = "uploader"
	ColSubscriber Column = "subscriber"
	ColUsername   Column = "username"
	ColFullName   Column = "full_name"
)

type Operator int

const (
	OpEq Operator = iota
	OpContains
	OpLTE
	OpGTE
)

type Predicate struct {
	Column Column
	Op     Operator
	Value  any
}

// Clause is a disjunction of predicates; a Spec ANDs its clauses.
type Clause struct {
	Any []Predicate
}

func Where(col Column, op Operator, value any) Clause {
	return Clause{Any: []Predicate{{Column: col, Op: op, Value: value}}}
}

func AnyOf(preds ...Predicate) Clause {
	return Clause{Any: preds}
}

type SortKey string

const (
	SortRecency  SortKey = "recency"
	SortViews    SortKey = "views"
	SortUsername SortKey = "username"
)

// ParseSort maps the sort parameter to a key; anything unknown is recency.
func ParseSort(s *string) SortKey {
	if s != nil && *s == string(SortViews) {
		return SortViews
	}
	return SortRecency
}

type Page struct {
	Offset int
	Limit  int
}

// ParsePage reads offset and limit. A missing, zero or unreadable value
// falls back to the default; the result is clamped to the allowed range.
func ParsePage(offset, limit *string) Page {
	p := Page{Offset: readInt(offset, 0), Limit: readInt(limit, DefaultLimit)}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func readInt(s *string, fallback int) int {
	if s == nil {
		return fallback
	}
	f, ok := validation.ParseNumber(*s)
	if !ok || f == 0 {
		return fallback
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

type Spec struct {
	Where []Clause
	Sort  SortKey
	Page  Page
}

// VideoFilters are the optional filters of a video search.
type VideoFilters struct {
	Term          string
	MaxDuration   *float64
	UploadedSince *time.Time
	Category      *string
}

// ContainsPattern is the LIKE pattern for a case-insensitive substring match.
func ContainsPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// Videos builds the specification of a video search.
func Videos(f VideoFilters, sort SortKey, page Page) Spec {
	s := Spec{Sort: sort, Page: page}
	s.Where = append(s.Where, Where(ColTitle, OpContains, ContainsPattern(f.Term)))
	if f.MaxDuration != nil {
		s.Where = append(s.Where, Where(ColDuration, OpLTE, *f.MaxDuration))
	}
	if f.UploadedSince != nil {
		s.Where = append(s.Where, Where(ColUploadedAt, OpGTE, *f.UploadedSince))
	}
	if f.Category != nil && *f.Category != "" {
		s.Where = append(s.Where, Where(ColCategory, OpEq, *f.Category))
	}
	return s
}

// Users builds the specification of a user search: the term may match the
// username or the "first last" full name.
func Users(term string, page Page) Spec {
	pattern := ContainsPattern(term)
	return Spec{
		Where: []Clause{AnyOf(
			Predicate{Column: ColUsername, Op: OpContains, Value: pattern},
			Predicate{Column: ColFullName, Op: OpContains, Value: pattern},
		)},
		Sort: SortUsername,
		Page: page,
	}
}

// UploadedBy lists a channel's videos, newest first.
func UploadedBy(userID uuid.UUID, page Page) Spec {
	return Spec{
		Where: []Clause{Where(ColUploader, OpEq, userID)},
		Sort:  SortRecency,
		Page:  page,
	}
}

// SubscriptionFeed lists videos of every channel userID subscribes to.
func SubscriptionFeed(userID uuid.UUID, page Page) Spec {
	return Spec{
		Where: []Clause{Where(ColSubscriber, OpEq, userID)},
		Sort:  SortRecency,
		Page:  page,
	}
}
