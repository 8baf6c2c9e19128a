package models

// SearchVideosQuery is the typed view of GET /search/videos.
type SearchVideosQuery struct {
	Q             *string `form:"q"`
	MaxUploadDate *string `form:"max_upload_date"`
	MinDuration   *string `form:"min_duration"`
	Category      *string `form:"category"`
	Sort          *string `form:"sort"`
	Offset        *string `form:"offset"`
	Limit         *string `form:"limit"`
}

// SearchUsersQuery is the typed view of GET /search/users.
type SearchUsersQuery struct {
	Q      *string `form:"q"`
	Offset *string `form:"offset"`
	Limit  *string `form:"limit"`
}

// PageQuery is the typed view of any listing endpoint that only paginates.
type PageQuery struct {
	Offset *string `form:"offset"`
	Limit  *string `form:"limit"`
}
