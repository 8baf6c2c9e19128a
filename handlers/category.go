package handlers

import (
	"github.com/gin-gonic/gin"

	"video-sharing/services"
)

type Category interface {
	List(c *gin.Context)
}

type category struct {
	categoryService services.CategoryService
}

func NewCategory(cs services.CategoryService) Category {
	return &category{categoryService: cs}
}

// @Summary List categories
// @Tags categories
// @Produce  json
// @Success 200 {array} string
// @Router /v1/categories [get]
func (ct *category) List(c *gin.Context) {
	names, err := ct.categoryService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, names)
}
