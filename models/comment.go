package models

import (
	"time"

	"github.com/google/uuid"
)

type CommentAuthor struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IconPath string    `json:"icon_path"`
}

type Comment struct {
	ID        int64         `json:"id"`
	VideoID   string        `json:"video_id"`
	Content   string        `json:"content"`
	Author    CommentAuthor `json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	ReactionCount
}

// CommentBody is the JSON body for creating or editing a comment.
type CommentBody struct {
	Content *string `json:"content"`
}

// CommentPath carries the path parameters of nested comment routes.
type CommentPath struct {
	VideoID   *string
	CommentID *string
}
