package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/services"
)

func strPtr(s string) *string { return &s }

func TestVideoSpec(t *testing.T) {
	spec := services.VideoSpec(models.SearchVideosQuery{
		Q:             strPtr("Cat"),
		MinDuration:   strPtr("90"),
		MaxUploadDate: strPtr("2021-03-04"),
		Category:      strPtr("music"),
		Sort:          strPtr("views"),
		Offset:        strPtr("10"),
		Limit:         strPtr("0"),
	})

	require.Equal(t, search.SortViews, spec.Sort)
	require.Equal(t, search.Page{Offset: 10, Limit: search.DefaultLimit}, spec.Page)
	require.Len(t, spec.Where, 4)
	require.Equal(t, search.Predicate{Column: search.ColTitle, Op: search.OpContains, Value: "%cat%"}, spec.Where[0].Any[0])
	require.Equal(t, search.Predicate{Column: search.ColDuration, Op: search.OpLTE, Value: 90.0}, spec.Where[1].Any[0])
	require.Equal(t, search.Predicate{
		Column: search.ColUploadedAt, Op: search.OpGTE, Value: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
	}, spec.Where[2].Any[0])
	require.Equal(t, search.Predicate{Column: search.ColCategory, Op: search.OpEq, Value: "music"}, spec.Where[3].Any[0])
}

func TestVideoSpecDefaults(t *testing.T) {
	spec := services.VideoSpec(models.SearchVideosQuery{Q: strPtr("x"), Sort: strPtr("oldest")})

	require.Equal(t, search.SortRecency, spec.Sort)
	require.Equal(t, search.Page{Offset: 0, Limit: search.DefaultLimit}, spec.Page)
	require.Len(t, spec.Where, 1)
}

func TestUserSpec(t *testing.T) {
	spec := services.UserSpec(models.SearchUsersQuery{Q: strPtr("Ann"), Limit: strPtr("5")})

	require.Equal(t, search.SortUsername, spec.Sort)
	require.Equal(t, 5, spec.Page.Limit)
	require.Len(t, spec.Where, 1)
	require.Len(t, spec.Where[0].Any, 2)
}
