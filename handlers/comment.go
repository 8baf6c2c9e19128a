package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/services"
)

type Comment interface {
	List(c *gin.Context, q models.PageQuery)
	Create(c *gin.Context, body models.CommentBody)
	Update(c *gin.Context, body models.CommentBody)
	Delete(c *gin.Context)
	React(c *gin.Context, body models.ReactionBody)
	Unreact(c *gin.Context)
}

type comment struct {
	commentService  services.CommentService
	reactionService services.ReactionService
}

func NewComment(cs services.CommentService, rs services.ReactionService) Comment {
	return &comment{
		commentService:  cs,
		reactionService: rs,
	}
}

// @Summary List the comments of a video
// @Tags comments
// @Produce  json
// @Param   video_id  path   string  true   "Video id"
// @Param   offset    query  int     false  "Offset"
// @Param   limit     query  int     false  "Limit"
// @Success 200 {array} models.Comment
// @Router /v1/videos/{video_id}/comments [get]
func (cm *comment) List(c *gin.Context, q models.PageQuery) {
	comments, err := cm.commentService.List(c.Request.Context(), c.Param("video_id"), search.ParsePage(q.Offset, q.Limit))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, comments)
}

// @Summary Comment on a video
// @Tags comments
// @Accept  json
// @Produce  json
// @Param   video_id  path  string              true  "Video id"
// @Param   body      body  models.CommentBody  true  "Comment"
// @Success 201 {object} models.Comment
// @Router /v1/videos/{video_id}/comments [post]
// @Security BearerAuth
func (cm *comment) Create(c *gin.Context, body models.CommentBody) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	created, err := cm.commentService.Create(c.Request.Context(), c.Param("video_id"), uid, *body.Content)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

func (cm *comment) Update(c *gin.Context, body models.CommentBody) {
	current := Local(c).Comment
	if current == nil {
		fail(c, models.NotFound(models.EntityComment))
		return
	}
	updated, err := cm.commentService.Update(c.Request.Context(), current.VideoID, current.ID, *body.Content)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, updated)
}

func (cm *comment) Delete(c *gin.Context) {
	current := Local(c).Comment
	if current == nil {
		fail(c, models.NotFound(models.EntityComment))
		return
	}
	msg, err := cm.commentService.Delete(c.Request.Context(), current.VideoID, current.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

func (cm *comment) React(c *gin.Context, body models.ReactionBody) {
	uid, id, err := cm.target(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := cm.reactionService.ReactComment(c.Request.Context(), id, uid, *body.Reaction)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

func (cm *comment) Unreact(c *gin.Context) {
	uid, id, err := cm.target(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := cm.reactionService.UnreactComment(c.Request.Context(), id, uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}

func (cm *comment) target(c *gin.Context) (uid uuid.UUID, id int64, err error) {
	if uid, err = principal(c); err != nil {
		return
	}
	id, err = strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		err = models.ErrInvalidParameter().AddParams("comment_id")
	}
	return
}
