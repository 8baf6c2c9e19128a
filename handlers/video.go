package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/services"
	"video-sharing/utils"
)

type Video interface {
	Upload(c *gin.Context, form models.UploadVideoForm)
	ListOwn(c *gin.Context, q models.PageQuery)
	ListByChannel(c *gin.Context, q models.PageQuery)
	Get(c *gin.Context)
	Update(c *gin.Context, form models.UpdateVideoForm)
	Delete(c *gin.Context)
	React(c *gin.Context, body models.ReactionBody)
	Unreact(c *gin.Context)
}

type video struct {
	videoService    services.VideoService
	reactionService services.ReactionService
	tempDir         string
}

func NewVideo(vs services.VideoService, rs services.ReactionService, tempDir string) Video {
	return &video{
		videoService:    vs,
		reactionService: rs,
		tempDir:         tempDir,
	}
}

// saveTemp writes an uploaded file to the temp dir. The path is registered
// for cleanup before anything is written.
func saveTemp(c *gin.Context, fh *multipart.FileHeader, dir string) (string, error) {
	dst := filepath.Join(dir, utils.RandomString(32)+strings.ToLower(filepath.Ext(fh.Filename)))
	Local(c).AddTempFile(dst)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", models.Internal("failed to save upload", err)
	}
	return dst, nil
}

// Upload stores a new video.
// @Summary Upload a video
// @Tags videos
// @Accept  multipart/form-data
// @Produce  json
// @Param   title        formData  string  true   "Title"
// @Param   description  formData  string  false  "Description"
// @Param   categories   formData  string  false  "Comma separated categories"
// @Param   video        formData  file    true   "Video file"
// @Success 201 {object} models.Video
// @Failure 400 {object} map[string]string
// @Router /v1/videos [post]
// @Security BearerAuth
func (v *video) Upload(c *gin.Context, form models.UploadVideoForm) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	path, err := saveTemp(c, form.Video, v.tempDir)
	if err != nil {
		fail(c, err)
		return
	}
	input := models.UploadVideoInput{
		Title:       *form.Title,
		Categories:  models.SplitCategories(*form.Categories),
		FilePath:    path,
		Filename:    form.Video.Filename,
		ContentType: form.Video.Header.Get("Content-Type"),
	}
	if form.Description != nil {
		input.Description = *form.Description
	}
	vid, err := v.videoService.Upload(c.Request.Context(), uid, input, Local(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, vid)
}

// ListOwn lists the caller's uploads.
// @Summary List own videos
// @Tags videos
// @Produce  json
// @Param   offset  query  int  false  "Offset"
// @Param   limit   query  int  false  "Limit"
// @Success 200 {array} models.Video
// @Router /v1/videos [get]
// @Security BearerAuth
func (v *video) ListOwn(c *gin.Context, q models.PageQuery) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	videos, err := v.videoService.ListOwn(c.Request.Context(), uid, search.ParsePage(q.Offset, q.Limit))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, videos)
}

func (v *video) ListByChannel(c *gin.Context, q models.PageQuery) {
	videos, err := v.videoService.ListByChannel(c.Request.Context(), c.Param("username"), search.ParsePage(q.Offset, q.Limit))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, videos)
}

// Get returns a video with its reaction counts and counts the view.
// @Summary Get a video
// @Tags videos
// @Produce  json
// @Param   video_id  path  string  true  "Video id"
// @Success 200 {object} models.VideoDetail
// @Failure 404 {object} map[string]string
// @Router /v1/videos/{video_id} [get]
func (v *video) Get(c *gin.Context) {
	detail, err := v.videoService.Get(c.Request.Context(), c.Param("video_id"), Local(c).Viewer())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, detail)
}

// Update edits a video the caller owns.
// @Summary Update a video
// @Tags videos
// @Accept  multipart/form-data
// @Produce  json
// @Param   video_id     path      string  true   "Video id"
// @Param   title        formData  string  false  "Title"
// @Param   description  formData  string  false  "Description"
// @Param   categories   formData  string  false  "Comma separated categories"
// @Param   thumbnail    formData  file    false  "Thumbnail image"
// @Success 200 {object} models.Video
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /v1/videos/{video_id} [patch]
// @Security BearerAuth
func (v *video) Update(c *gin.Context, form models.UpdateVideoForm) {
	current := Local(c).Video
	if current == nil {
		fail(c, models.NotFound(models.EntityVideo))
		return
	}
	input := models.UpdateVideoInput{
		Title:       nonEmpty(form.Title),
		Description: nonEmpty(form.Description),
	}
	if form.Categories != nil && *form.Categories != "" {
		input.Categories = models.SplitCategories(*form.Categories)
	}
	if form.Thumbnail != nil {
		path, err := saveTemp(c, form.Thumbnail, v.tempDir)
		if err != nil {
			fail(c, err)
			return
		}
		input.ThumbnailPath = path
		input.ThumbnailFilename = form.Thumbnail.Filename
		input.ThumbnailContentType = form.Thumbnail.Header.Get("Content-Type")
	}
	updated, err := v.videoService.Update(c.Request.Context(), *current, input)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, updated)
}

// @Summary Delete a video
// @Tags videos
// @Produce  json
// @Param   video_id  path  string  true  "Video id"
// @Success 200 {object} models.Message
// @Router /v1/videos/{video_id} [delete]
// @Security BearerAuth
func (v *video) Delete(c *gin.Context) {
	current := Local(c).Video
	if current == nil {
		fail(c, models.NotFound(models.EntityVideo))
		return
	}
	msg, err := v.videoService.Delete(c.Request.Context(), *current)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

// @Summary React to a video
// @Tags videos
// @Accept  json
// @Produce  json
// @Param   video_id  path  string               true  "Video id"
// @Param   body      body  models.ReactionBody  true  "like or dislike"
// @Success 200 {object} models.Message
// @Router /v1/videos/{video_id}/reaction [post]
// @Security BearerAuth
func (v *video) React(c *gin.Context, body models.ReactionBody) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := v.reactionService.ReactVideo(c.Request.Context(), c.Param("video_id"), uid, *body.Reaction)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

func (v *video) Unreact(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := v.reactionService.UnreactVideo(c.Request.Context(), c.Param("video_id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

// nonEmpty maps an absent or empty form value to nil, which keeps the stored value.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
