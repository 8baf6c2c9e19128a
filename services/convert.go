package services

import (
	"github.com/jackc/pgx/v5/pgtype"

	"video-sharing/database/db"
	"video-sharing/models"
)

func convertDbUserToModelUser(user db.User) models.User {
	return models.User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		IconPath:  user.IconPath.String,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func convertChannel(c db.GetChannelRow) models.PublicUser {
	return models.PublicUser{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Username:    c.Username,
		IconPath:    c.IconPath.String,
		Subscribers: c.Subscribers,
	}
}

func convertChannels(rows []db.GetChannelRow) []models.PublicUser {
	out := make([]models.PublicUser, 0, len(rows))
	for _, r := range rows {
		out = append(out, convertChannel(r))
	}
	return out
}

func convertVideo(v db.GetVideoRow, store StaticStore) models.Video {
	video := models.Video{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Duration:      v.Duration,
		VideoPath:     v.VideoPath,
		ThumbnailPath: v.ThumbnailPath,
		Views:         v.Views,
		UploadedAt:    v.UploadedAt,
		UploadedBy: models.Uploader{
			ID:       v.UploadedBy,
			Username: v.Username,
			IconPath: v.IconPath.String,
		},
		Categories: v.Categories,
	}
	if video.Categories == nil {
		video.Categories = []string{}
	}
	if store != nil {
		video.VideoURL = store.URL(v.VideoPath)
		video.ThumbnailURL = store.URL(v.ThumbnailPath)
	}
	return video
}

func convertVideos(rows []db.GetVideoRow, store StaticStore) []models.Video {
	out := make([]models.Video, 0, len(rows))
	for _, r := range rows {
		out = append(out, convertVideo(r, store))
	}
	return out
}

func convertComment(c db.GetCommentRow) models.Comment {
	return models.Comment{
		ID:      c.ID,
		VideoID: c.VideoID,
		Content: c.Content,
		Author: models.CommentAuthor{
			ID:       c.UserID,
			Username: c.Username,
			IconPath: c.IconPath.String,
		},
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		ReactionCount: models.ReactionCount{Like: c.Likes, Dislike: c.Dislikes},
	}
}

func text(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
