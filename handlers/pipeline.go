package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-sharing/models"
	"video-sharing/validation"
)

// Binder builds the typed accessor of a route from the raw request.
type Binder[T any] func(c *gin.Context) (T, error)

// Validated wraps handle so it only runs when every rule passes. Rules run
// in order and the first failure is reported.
func Validated[T any](bind Binder[T], handle func(c *gin.Context, req T), rules ...validation.Rule[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := bind(c)
		if err != nil {
			fail(c, err)
			return
		}
		if err := validation.Validate(req, rules...); err != nil {
			fail(c, err)
			return
		}
		handle(c, req)
	}
}

func QueryOf[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, models.ErrInvalidParameter().WithDescription("malformed query").AddParams(err.Error())
	}
	return req, nil
}

// JSONOf binds a JSON body. An empty body yields the zero accessor so the
// rules can report what is missing.
func JSONOf[T any](c *gin.Context) (T, error) {
	var req T
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, models.ErrInvalidParameter().WithDescription("malformed body").AddParams(err.Error())
	}
	return req, nil
}

func CommentPathOf(c *gin.Context) (models.CommentPath, error) {
	return models.CommentPath{
		VideoID:   param(c, "video_id"),
		CommentID: param(c, "comment_id"),
	}, nil
}

// parseMultipart treats a request that is not multipart as an empty form.
func parseMultipart(c *gin.Context, maxMemory int64) error {
	err := c.Request.ParseMultipartForm(maxMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return models.ErrInvalidParameter().WithDescription("request body too large")
	}
	return models.ErrInvalidParameter().WithDescription("malformed multipart body").AddParams(err.Error())
}

func postForm(c *gin.Context, name string) *string {
	v, ok := c.GetPostForm(name)
	if !ok {
		return nil
	}
	return &v
}

func UploadVideoFormOf(maxMemory int64) Binder[models.UploadVideoForm] {
	return func(c *gin.Context) (models.UploadVideoForm, error) {
		if err := parseMultipart(c, maxMemory); err != nil {
			return models.UploadVideoForm{}, err
		}
		form := models.UploadVideoForm{
			Title:       postForm(c, "title"),
			Description: postForm(c, "description"),
			Categories:  postForm(c, "categories"),
		}
		if fh, err := c.FormFile("video"); err == nil {
			form.Video = fh
		}
		return form, nil
	}
}

func UpdateVideoFormOf(maxMemory int64) Binder[models.UpdateVideoForm] {
	return func(c *gin.Context) (models.UpdateVideoForm, error) {
		if err := parseMultipart(c, maxMemory); err != nil {
			return models.UpdateVideoForm{}, err
		}
		form := models.UpdateVideoForm{
			Title:       postForm(c, "title"),
			Description: postForm(c, "description"),
			Categories:  postForm(c, "categories"),
		}
		if fh, err := c.FormFile("thumbnail"); err == nil {
			form.Thumbnail = fh
		}
		return form, nil
	}
}

// Check is Validated without a handler: on success the chain continues.
func Check[T any](bind Binder[T], rules ...validation.Rule[T]) gin.HandlerFunc {
	return Validated(bind, func(c *gin.Context, _ T) { c.Next() }, rules...)
}
