package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"video-sharing/models"
	"video-sharing/services"
)

// KeyFunc extracts the lookup key of a guarded resource from the request.
type KeyFunc func(c *gin.Context) models.LookupKey

func VideoKey(c *gin.Context) models.LookupKey {
	return models.LookupKey{ID: c.Param("video_id")}
}

// CommentKey looks a comment up inside the video of the same route.
func CommentKey(c *gin.Context) models.LookupKey {
	return models.LookupKey{ID: c.Param("comment_id"), ParentID: c.Param("video_id")}
}

func UserKey(c *gin.Context) models.LookupKey {
	return models.LookupKey{ID: c.Param("username")}
}

type Guards interface {
	EnsureExists(kind models.EntityKind, key KeyFunc) gin.HandlerFunc
	LoadVideo() gin.HandlerFunc
	OwnVideo() gin.HandlerFunc
	LoadComment() gin.HandlerFunc
	OwnComment() gin.HandlerFunc
}

type guards struct {
	finder   services.Finder
	videos   services.VideoService
	comments services.CommentService
	enforcer Enforcer
}

func NewGuards(finder services.Finder, videos services.VideoService, comments services.CommentService, enforcer Enforcer) Guards {
	return &guards{
		finder:   finder,
		videos:   videos,
		comments: comments,
		enforcer: enforcer,
	}
}

// EnsureExists lets the request through only when exactly one resource matches the key.
func (g *guards) EnsureExists(kind models.EntityKind, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		n, err := g.finder.Count(c.Request.Context(), kind, k)
		if err != nil {
			fail(c, err)
			return
		}
		if n != 1 {
			fail(c, models.NotFound(kind).AddParams(k.ID))
			return
		}
		c.Next()
	}
}

// LoadVideo attaches the route's video to the request context.
func (g *guards) LoadVideo() gin.HandlerFunc {
	return func(c *gin.Context) {
		video, err := g.videos.Load(c.Request.Context(), c.Param("video_id"))
		if err != nil {
			fail(c, err)
			return
		}
		Local(c).Video = &video
		c.Next()
	}
}

func (g *guards) LoadComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
		if err != nil {
			fail(c, models.NotFound(models.EntityComment).AddParams(c.Param("comment_id")))
			return
		}
		comment, err := g.comments.Get(c.Request.Context(), c.Param("video_id"), id)
		if err != nil {
			fail(c, err)
			return
		}
		Local(c).Comment = &comment
		c.Next()
	}
}

func (g *guards) OwnVideo() gin.HandlerFunc {
	return func(c *gin.Context) {
		video := Local(c).Video
		if video == nil {
			fail(c, models.NotFound(models.EntityVideo))
			return
		}
		g.own(c, video.UploadedBy.ID)
	}
}

func (g *guards) OwnComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		comment := Local(c).Comment
		if comment == nil {
			fail(c, models.NotFound(models.EntityComment))
			return
		}
		g.own(c, comment.Author.ID)
	}
}

// own passes the owner and administrators.
func (g *guards) own(c *gin.Context, owner uuid.UUID) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	if uid == owner {
		c.Next()
		return
	}
	if g.enforcer != nil {
		admin, err := g.enforcer.HasRoleForUser(uid.String(), services.RoleAdmin, services.DefaultDomain)
		if err != nil {
			fail(c, models.Internal("failed to check role", err))
			return
		}
		if admin {
			c.Next()
			return
		}
	}
	fail(c, models.Forbidden("not the owner"))
}
