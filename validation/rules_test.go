package validation_test

import (
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"video-sharing/models"
	"video-sharing/validation"
)

type form struct {
	Title       *string
	Description *string
	Offset      *string
	Limit       *string
	Flag        *string
}

var (
	title       = validation.F("title", func(f form) *string { return f.Title })
	description = validation.F("description", func(f form) *string { return f.Description })
	offset      = validation.F("offset", func(f form) *string { return f.Offset })
	limit       = validation.F("limit", func(f form) *string { return f.Limit })
	flag        = validation.F("flag", func(f form) *string { return f.Flag })
)

func requireTagged(t *testing.T, err error, status int, message string) {
	t.Helper()
	var e models.Error
	require.True(t, errors.As(err, &e), "expected models.Error, got %v", err)
	require.Equal(t, status, e.Code)
	require.Equal(t, message, e.Message)
}

func TestMustExist(t *testing.T) {
	rule := validation.MustExist(title, description)

	require.NoError(t, rule.Check(form{Title: ptr("a"), Description: ptr("b")}))
	requireTagged(t, rule.Check(form{Title: ptr("a")}), http.StatusBadRequest, "missing parameter")
	requireTagged(t, rule.Check(form{Title: ptr(""), Description: ptr("b")}), http.StatusBadRequest, "missing parameter")
}

func TestMustExistOne(t *testing.T) {
	rule := validation.MustExistOne(title, description)

	testCases := []struct {
		name string
		in   form
		ok   bool
	}{
		{name: "none", in: form{}, ok: false},
		{name: "all empty", in: form{Title: ptr(""), Description: ptr("")}, ok: false},
		{name: "first", in: form{Title: ptr("x")}, ok: true},
		{name: "second", in: form{Description: ptr("y")}, ok: true},
		{name: "both", in: form{Title: ptr("x"), Description: ptr("y")}, ok: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := rule.Check(tc.in)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			requireTagged(t, err, http.StatusBadRequest, "missing parameter")
		})
	}
}

func TestMustInRangeIfExist(t *testing.T) {
	offsetRule := validation.MustInRangeIfExist(offset, 0, math.Inf(1))
	limitRule := validation.MustInRangeIfExist(limit, 0, 100)

	require.NoError(t, offsetRule.Check(form{}))
	require.NoError(t, offsetRule.Check(form{Offset: ptr("0")}))
	require.NoError(t, offsetRule.Check(form{Offset: ptr("123456789")}))
	requireTagged(t, offsetRule.Check(form{Offset: ptr("-1")}), http.StatusBadRequest, "invalid parameter")
	requireTagged(t, offsetRule.Check(form{Offset: ptr("abc")}), http.StatusBadRequest, "invalid parameter")

	require.NoError(t, limitRule.Check(form{Limit: ptr("100")}))
	require.NoError(t, limitRule.Check(form{Limit: ptr("0")}))
	requireTagged(t, limitRule.Check(form{Limit: ptr("101")}), http.StatusBadRequest, "invalid parameter")
	requireTagged(t, limitRule.Check(form{Limit: ptr("100.5")}), http.StatusBadRequest, "invalid parameter")
}

func TestBinaryRules(t *testing.T) {
	require.NoError(t, validation.BinaryIfExist(flag).Check(form{}))
	require.NoError(t, validation.Binary(flag).Check(form{Flag: ptr("1")}))
	requireTagged(t, validation.Binary(flag).Check(form{}), http.StatusBadRequest, "invalid parameter")
	requireTagged(t, validation.BinaryIfExist(flag).Check(form{Flag: ptr("yes")}), http.StatusBadRequest, "invalid parameter")
}

func TestOneOfIfExist(t *testing.T) {
	rule := validation.OneOfIfExist(flag, "like", "dislike")
	require.NoError(t, rule.Check(form{}))
	require.NoError(t, rule.Check(form{Flag: ptr("dislike")}))
	requireTagged(t, rule.Check(form{Flag: ptr("love")}), http.StatusBadRequest, "invalid parameter")
	requireTagged(t, rule.Check(form{Flag: ptr("")}), http.StatusBadRequest, "invalid parameter")
}

func TestValidateStopsAtFirstFailure(t *testing.T) {
	var ran []string
	track := func(name string, err error) validation.Rule[form] {
		return validation.RuleFunc[form](func(form) error {
			ran = append(ran, name)
			return err
		})
	}

	err := validation.Validate(form{},
		track("first", nil),
		validation.MustExist(title),
		track("after", nil),
		validation.NumberIfExist(offset),
	)
	requireTagged(t, err, http.StatusBadRequest, "missing parameter")
	require.Equal(t, []string{"first"}, ran)
}

func TestValidateReportsFirstDeclaredFailure(t *testing.T) {
	in := form{Offset: ptr("x")}

	err := validation.Validate(in, validation.MustExist(title), validation.NumberIfExist(offset))
	requireTagged(t, err, http.StatusBadRequest, "missing parameter")

	err = validation.Validate(in, validation.NumberIfExist(offset), validation.MustExist(title))
	requireTagged(t, err, http.StatusBadRequest, "invalid parameter")
}
