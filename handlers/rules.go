package handlers

import (
	"math"
	"strings"

	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/validation"
)

var (
	pageOffset = validation.F("offset", func(q models.PageQuery) *string { return q.Offset })
	pageLimit  = validation.F("limit", func(q models.PageQuery) *string { return q.Limit })

	PageRules = []validation.Rule[models.PageQuery]{
		validation.NumberIfExist(pageOffset, pageLimit),
		validation.MustInRangeIfExist(pageOffset, 0, math.Inf(1)),
		validation.MustInRangeIfExist(pageLimit, 0, search.MaxLimit),
	}
)

var (
	svQ             = validation.F("q", func(q models.SearchVideosQuery) *string { return q.Q })
	svMaxUploadDate = validation.F("max_upload_date", func(q models.SearchVideosQuery) *string { return q.MaxUploadDate })
	svMinDuration   = validation.F("min_duration", func(q models.SearchVideosQuery) *string { return q.MinDuration })
	svOffset        = validation.F("offset", func(q models.SearchVideosQuery) *string { return q.Offset })
	svLimit         = validation.F("limit", func(q models.SearchVideosQuery) *string { return q.Limit })

	SearchVideosRules = []validation.Rule[models.SearchVideosQuery]{
		validation.MustExist(svQ),
		validation.DateIfExist(svMaxUploadDate),
		validation.NumberIfExist(svOffset, svLimit, svMinDuration),
		validation.MustInRangeIfExist(svOffset, 0, math.Inf(1)),
		validation.MustInRangeIfExist(svLimit, 0, search.MaxLimit),
	}
)

var (
	suQ      = validation.F("q", func(q models.SearchUsersQuery) *string { return q.Q })
	suOffset = validation.F("offset", func(q models.SearchUsersQuery) *string { return q.Offset })
	suLimit  = validation.F("limit", func(q models.SearchUsersQuery) *string { return q.Limit })

	SearchUsersRules = []validation.Rule[models.SearchUsersQuery]{
		validation.MustExist(suQ),
		validation.NumberIfExist(suOffset, suLimit),
		validation.MustInRangeIfExist(suOffset, 0, math.Inf(1)),
		validation.MustInRangeIfExist(suLimit, 0, search.MaxLimit),
	}
)

var (
	upTitle = validation.F("title", func(f models.UploadVideoForm) *string { return f.Title })
	upVideo = validation.F("video", func(f models.UploadVideoForm) *string { return models.FileName(f.Video) })

	UploadVideoRules = []validation.Rule[models.UploadVideoForm]{
		validation.MustExist(upTitle, upVideo),
		validation.RuleFunc[models.UploadVideoForm](func(f models.UploadVideoForm) error {
			if !strings.HasPrefix(f.Video.Header.Get("Content-Type"), "video") {
				return models.BadRequest("invalid video")
			}
			return nil
		}),
		validation.RuleFunc[models.UploadVideoForm](func(f models.UploadVideoForm) error {
			return categoryList(f.Categories)
		}),
	}
)

var (
	edTitle       = validation.F("title", func(f models.UpdateVideoForm) *string { return f.Title })
	edDescription = validation.F("description", func(f models.UpdateVideoForm) *string { return f.Description })
	edCategories  = validation.F("categories", func(f models.UpdateVideoForm) *string { return f.Categories })
	edThumbnail   = validation.F("thumbnail", func(f models.UpdateVideoForm) *string { return models.FileName(f.Thumbnail) })

	UpdateVideoRules = []validation.Rule[models.UpdateVideoForm]{
		validation.MustExistOne(edTitle, edDescription, edCategories, edThumbnail),
		validation.RuleFunc[models.UpdateVideoForm](func(f models.UpdateVideoForm) error {
			if !validation.Exists(f.Categories) {
				return nil
			}
			return categoryList(f.Categories)
		}),
		validation.RuleFunc[models.UpdateVideoForm](func(f models.UpdateVideoForm) error {
			if f.Thumbnail != nil && !strings.HasPrefix(f.Thumbnail.Header.Get("Content-Type"), "image") {
				return models.BadRequest("invalid thumbnail")
			}
			return nil
		}),
	}
)

var (
	reaction = validation.F("reaction", func(b models.ReactionBody) *string { return b.Reaction })

	ReactionRules = []validation.Rule[models.ReactionBody]{
		validation.MustExist(reaction),
		validation.OneOfIfExist(reaction, "like", "dislike"),
	}
)

var (
	content = validation.F("content", func(b models.CommentBody) *string { return b.Content })

	CommentRules = []validation.Rule[models.CommentBody]{
		validation.MustExist(content),
	}
)

var (
	commentID = validation.F("comment_id", func(p models.CommentPath) *string { return p.CommentID })

	CommentPathRules = []validation.Rule[models.CommentPath]{
		validation.Number(commentID),
	}
)

func categoryList(s *string) error {
	if s == nil || !models.CategoryListRegex.MatchString(*s) {
		return models.BadRequest("invalid categories")
	}
	return nil
}
