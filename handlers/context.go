package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"video-sharing/models"
)

const (
	localKey  = "local"
	userIDKey = "user_id"
)

// Local returns the request context created by RequestContext. Handlers
// mounted without it still get a usable, unmanaged one.
func Local(c *gin.Context) *models.Local {
	if v, ok := c.Get(localKey); ok {
		if l, ok := v.(*models.Local); ok {
			return l
		}
	}
	l := models.NewLocal()
	c.Set(localKey, l)
	return l
}

func principal(c *gin.Context) (uuid.UUID, error) {
	local := Local(c)
	if !local.Authenticated {
		return uuid.Nil, models.Unauthorized("user_id not found in context", fmt.Errorf("user_id not found in context"))
	}
	return local.UserID, nil
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func ok(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, data)
}

// fail attaches err for ErrorMiddleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func param(c *gin.Context, name string) *string {
	v := c.Param(name)
	if v == "" {
		return nil
	}
	return &v
}
