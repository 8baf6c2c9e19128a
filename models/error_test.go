package models_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"video-sharing/models"
)

func TestIdentifyDbError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: http.StatusNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("get: %w", pgx.ErrNoRows), want: http.StatusNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: http.StatusConflict},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: http.StatusNotFound},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: http.StatusInternalServerError},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := models.IdentifyDbError(tc.err)
			require.Equal(t, tc.want, got.Code)
			require.Equal(t, tc.want, got.Kind.Status())
			require.ErrorIs(t, got, tc.err)
		})
	}
}

func TestNotFound(t *testing.T) {
	err := models.NotFound(models.EntityComment)
	require.Equal(t, "comment not found", err.Message)
	require.Equal(t, http.StatusNotFound, err.Code)
	require.ErrorIs(t, err, models.ErrResourceNotFound)
}

func TestAddParamsDoesNotMutate(t *testing.T) {
	base := models.ErrMissingParameter()
	withParams := base.AddParams("title")
	require.Empty(t, base.Params)
	require.Equal(t, "title", withParams.Params)
	require.Equal(t, models.KindValidation, withParams.Kind)
}

func TestSplitCategories(t *testing.T) {
	require.Equal(t, []string{"music", "news"}, models.SplitCategories("music,,news"))
	require.True(t, models.CategoryListRegex.MatchString("music,news"))
	require.False(t, models.CategoryListRegex.MatchString("music,"))
	require.False(t, models.CategoryListRegex.MatchString("mu sic"))
}
