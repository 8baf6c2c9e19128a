// Package validation holds the field predicates and the ordered rule
// lists that guard request handlers.
package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Predicate reports whether a raw request value is acceptable. A nil value
// means the field was not sent at all.
type Predicate func(value *string) bool

var errNotNumber = errors.New("must be a finite number")

// DateLayouts are tried in order when a value has to be read as a date.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"Mon Jan 02 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

var finiteNumber = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if _, ok := ParseNumber(s); !ok {
		return errNotNumber
	}
	return nil
})

// ParseNumber converts s the way a numeric query parameter is read:
// surrounding whitespace is ignored and the result must be finite.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParseDate reads s with the first layout in DateLayouts that accepts it.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Exists is true when the value was sent and is not the empty string.
func Exists(value *string) bool {
	return value != nil && validation.Validate(*value, validation.Required) == nil
}

func IsNumber(value *string) bool {
	return Exists(value) && validation.Validate(*value, finiteNumber) == nil
}

// IsBinaryFlag accepts exactly "0" or "1".
func IsBinaryFlag(value *string) bool {
	return Exists(value) && validation.Validate(*value, validation.In("0", "1")) == nil
}

func IsDateFormat(value *string) bool {
	if !Exists(value) {
		return false
	}
	s := strings.TrimSpace(*value)
	for _, layout := range DateLayouts {
		if validation.Validate(s, validation.Date(layout)) == nil {
			return true
		}
	}
	return false
}

// IfExists lets an absent value through and checks a present one with p.
func IfExists(p Predicate) Predicate {
	return func(value *string) bool {
		return value == nil || p(value)
	}
}

var (
	IsNumberIfExist     = IfExists(IsNumber)
	IsBinaryFlagIfExist = IfExists(IsBinaryFlag)
	IsDateFormatIfExist = IfExists(IsDateFormat)
)
