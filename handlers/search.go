package handlers

import (
	"github.com/gin-gonic/gin"

	"video-sharing/models"
	"video-sharing/services"
)

type Search interface {
	Videos(c *gin.Context, q models.SearchVideosQuery)
	Users(c *gin.Context, q models.SearchUsersQuery)
}

type searchHandler struct {
	searchService services.SearchService
}

func NewSearch(ss services.SearchService) Search {
	return &searchHandler{searchService: ss}
}

// Videos searches videos by title.
// @Summary Search videos
// @Description min_duration is the longest duration returned and max_upload_date the earliest upload date.
// @Tags search
// @Produce  json
// @Param   q                query  string  true   "Title contains"
// @Param   max_upload_date  query  string  false  "Uploaded on or after"
// @Param   min_duration     query  number  false  "Duration at most, in seconds"
// @Param   category         query  string  false  "Category"
// @Param   sort             query  string  false  "views or recency"
// @Param   offset           query  int     false  "Offset"
// @Param   limit            query  int     false  "Limit, at most 100"
// @Success 200 {array} models.Video
// @Failure 400 {object} map[string]string
// @Router /v1/search/videos [get]
func (s *searchHandler) Videos(c *gin.Context, q models.SearchVideosQuery) {
	videos, err := s.searchService.Videos(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, videos)
}

// Users searches users by username or full name.
// @Summary Search users
// @Tags search
// @Produce  json
// @Param   q       query  string  true   "Username or name contains"
// @Param   offset  query  int     false  "Offset"
// @Param   limit   query  int     false  "Limit, at most 100"
// @Success 200 {array} models.PublicUser
// @Router /v1/search/users [get]
func (s *searchHandler) Users(c *gin.Context, q models.SearchUsersQuery) {
	users, err := s.searchService.Users(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, users)
}
