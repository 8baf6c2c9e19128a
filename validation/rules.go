package validation

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"video-sharing/models"
)

// Field names one typed value of a request accessor T.
type Field[T any] struct {
	Name  string
	Value func(T) *string
}

// F is shorthand for building a Field.
func F[T any](name string, value func(T) *string) Field[T] {
	return Field[T]{Name: name, Value: value}
}

// Rule checks a request accessor and returns a tagged error on failure.
type Rule[T any] interface {
	Check(req T) error
}

type RuleFunc[T any] func(req T) error

func (f RuleFunc[T]) Check(req T) error { return f(req) }

// Validate applies rules in order and returns the first failure.
func Validate[T any](req T, rules ...Rule[T]) error {
	for _, r := range rules {
		if err := r.Check(req); err != nil {
			return err
		}
	}
	return nil
}

// MustExist fails with "missing parameter" when any field is absent or empty.
func MustExist[T any](fields ...Field[T]) Rule[T] {
	return RuleFunc[T](func(req T) error {
		for _, f := range fields {
			if !Exists(f.Value(req)) {
				return models.ErrMissingParameter().AddParams(f.Name)
			}
		}
		return nil
	})
}

// MustExistOne fails with "missing parameter" only when every field is absent or empty.
func MustExistOne[T any](fields ...Field[T]) Rule[T] {
	return RuleFunc[T](func(req T) error {
		for _, f := range fields {
			if Exists(f.Value(req)) {
				return nil
			}
		}
		return models.ErrMissingParameter()
	})
}

// Satisfy fails with "invalid parameter" when any field's value fails p.
func Satisfy[T any](p Predicate, fields ...Field[T]) Rule[T] {
	return RuleFunc[T](func(req T) error {
		for _, f := range fields {
			if !p(f.Value(req)) {
				return models.ErrInvalidParameter().AddParams(f.Name)
			}
		}
		return nil
	})
}

func Number[T any](fields ...Field[T]) Rule[T] { return Satisfy(IsNumber, fields...) }
func NumberIfExist[T any](fields ...Field[T]) Rule[T] { return Satisfy(IsNumberIfExist, fields...) }
func Binary[T any](fields ...Field[T]) Rule[T] { return Satisfy(IsBinaryFlag, fields...) }
func BinaryIfExist[T any](fields ...Field[T]) Rule[T] { return Satisfy(IsBinaryFlagIfExist, fields...) }
func Date[T any](fields ...Field[T]) Rule[T] { return Satisfy(IsDateFormat, fields...) }
func DateIfExist[T any](fields ...Field[T]) Rule[T] { return Satisfy(IsDateFormatIfExist, fields...) }

// OneOfIfExist fails with "invalid parameter" when a present value is not one of allowed.
func OneOfIfExist[T any](field Field[T], allowed ...string) Rule[T] {
	in := make([]interface{}, len(allowed))
	for i, a := range allowed {
		in[i] = a
	}
	return RuleFunc[T](func(req T) error {
		v := field.Value(req)
		if v == nil {
			return nil
		}
		if validation.Validate(*v, validation.Required, validation.In(in...)) != nil {
			return models.ErrInvalidParameter().AddParams(field.Name)
		}
		return nil
	})
}

// MustInRangeIfExist requires a present value to be a number within [lo, hi].
// Use math.Inf for an open bound.
func MustInRangeIfExist[T any](field Field[T], lo, hi float64) Rule[T] {
	return RuleFunc[T](func(req T) error {
		v := field.Value(req)
		if v == nil {
			return nil
		}
		n, ok := ParseNumber(*v)
		if !ok {
			return models.ErrInvalidParameter().AddParams(field.Name)
		}
		rules := make([]validation.Rule, 0, 2)
		if !math.IsInf(lo, -1) {
			rules = append(rules, validation.Min(lo))
		}
		if !math.IsInf(hi, 1) {
			rules = append(rules, validation.Max(hi))
		}
		if validation.Validate(n, rules...) != nil {
			return models.ErrInvalidParameter().AddParams(field.Name)
		}
		return nil
	})
}
