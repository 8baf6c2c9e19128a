package handlers

import (
	"github.com/gin-gonic/gin"

	"video-sharing/models"
	"video-sharing/search"
	"video-sharing/services"
)

type History interface {
	List(c *gin.Context, q models.PageQuery)
	Clear(c *gin.Context)
}

type history struct {
	historyService services.HistoryService
}

func NewHistory(hs services.HistoryService) History {
	return &history{historyService: hs}
}

// @Summary Watch history
// @Description Most recently watched first.
// @Tags histories
// @Produce  json
// @Success 200 {array} models.Video
// @Router /v1/histories [get]
// @Security BearerAuth
func (h *history) List(c *gin.Context, q models.PageQuery) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	videos, err := h.historyService.List(c.Request.Context(), uid, search.ParsePage(q.Offset, q.Limit))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, videos)
}

func (h *history) Clear(c *gin.Context) {
	uid, err := principal(c)
	if err != nil {
		fail(c, err)
		return
	}
	msg, err := h.historyService.Clear(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, msg)
}
