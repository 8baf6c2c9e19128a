package models

import (
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryListRegex matches a comma separated list of category names.
var CategoryListRegex = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z,]*[a-zA-Z])?$`)

type Uploader struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IconPath string    `json:"icon_path"`
}

type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Duration      int32     `json:"duration"`
	VideoPath     string    `json:"video_path"`
	ThumbnailPath string    `json:"thumbnail_path"`
	VideoURL      string    `json:"video_url"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	Views         int64     `json:"views"`
	UploadedAt    time.Time `json:"uploaded_at"`
	UploadedBy    Uploader  `json:"uploaded_by"`
	Categories    []string  `json:"categories"`
}

// ReactionCount is the like/dislike aggregate of a single target.
type ReactionCount struct {
	Like    int64 `json:"like"`
	Dislike int64 `json:"dislike"`
}

type VideoDetail struct {
	Video
	ReactionCount
}

type Message struct {
	Message string `json:"message"`
}

// UploadVideoForm is the typed view of the POST /videos multipart body.
type UploadVideoForm struct {
	Title       *string
	Description *string
	Categories  *string
	Video       *multipart.FileHeader
}

// UpdateVideoForm is the typed view of the PATCH /videos/:video_id multipart body.
type UpdateVideoForm struct {
	Title       *string
	Description *string
	Categories  *string
	Thumbnail   *multipart.FileHeader
}

// ReactionBody is the JSON body of the reaction endpoints.
type ReactionBody struct {
	Reaction *string `json:"reaction"`
}

// UploadVideoInput is what the video service needs once the upload sits on local disk.
type UploadVideoInput struct {
	Title       string
	Description string
	Categories  []string
	FilePath    string
	Filename    string
	ContentType string
}

type UpdateVideoInput struct {
	Title       *string
	Description *string
	Categories  []string

	// ThumbnailPath is empty when the thumbnail is unchanged.
	ThumbnailPath        string
	ThumbnailFilename    string
	ThumbnailContentType string
}

// SplitCategories turns "a,b,,c" into [a b c].
func SplitCategories(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// FileName returns the uploaded file name, or nil when no file was sent.
func FileName(fh *multipart.FileHeader) *string {
	if fh == nil {
		return nil
	}
	name := fh.Filename
	return &name
}
