package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"video-sharing/models"
	"video-sharing/services"
	"video-sharing/utils"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_sharing_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_sharing_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Enforcer is the part of the casbin enforcer the middleware uses.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
	HasRoleForUser(name string, role string, domain ...string) (bool, error)
}

type Middleware interface {
	RequestContext() gin.HandlerFunc
	ErrorMiddleware() gin.HandlerFunc
	RequestLogger() gin.HandlerFunc
	Metrics() gin.HandlerFunc
	Timeout() gin.HandlerFunc
	Cors() gin.HandlerFunc
	Authenticate() gin.HandlerFunc
	OptionalAuthenticate() gin.HandlerFunc
	Authorize() gin.HandlerFunc
}

type middleware struct {
	tm       utils.TokenManager
	enforcer Enforcer
	logger   *slog.Logger
	timeout  time.Duration
}

func NewMiddleware(tm utils.TokenManager, enforcer Enforcer, logger *slog.Logger, timeout time.Duration) Middleware {
	return &middleware{
		tm:       tm,
		enforcer: enforcer,
		logger:   logger,
		timeout:  timeout,
	}
}

// RequestContext creates the request's Local and removes its temp files once
// everything after it, error responses included, has run.
func (m *middleware) RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		local := models.NewLocal()
		c.Set(localKey, local)

		c.Next()

		for _, err := range local.RemoveTempFiles() {
			m.logger.Warn("failed to remove temp file", "error", err, "path", c.Request.URL.Path)
		}
	}
}

// ErrorMiddleware writes the response for the first error attached to the context.
func (m *middleware) ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var Err models.Error
		if !errors.As(err, &Err) || Err.Kind == models.KindInternal {
			m.logger.Error("request failed",
				"path", c.Request.URL.Path,
				"code", Err.Code,
				"message", Err.Message,
				"description", Err.Description,
				"params", Err.Params,
				"error", err)
			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			}
			c.Abort()
			return
		}

		m.logger.Warn(fmt.Sprintf("Code: %d, Message: %s, Description: %s, Params: %s, Err: %v",
			Err.Code, Err.Message, Err.Description, Err.Params, Err.Err), "path", c.Request.URL.Path)
		status := Err.Code
		if status == 0 {
			status = Err.Kind.Status()
		}
		if !c.Writer.Written() {
			c.JSON(status, gin.H{"message": Err.Message})
		}
		c.Abort()
	}
}

// RequestLogger is the development access log.
func (m *middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		m.logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"bytes", c.Writer.Size(),
			"ip", c.ClientIP())
	}
}

func (m *middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Timeout bounds the request context. A zero timeout disables it.
func (m *middleware) Timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), m.timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m *middleware) Cors() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "*")
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", models.Unauthorized("access token not found", fmt.Errorf("access token not found"))
	}
	tokenParts := strings.Split(header, " ")
	if tokenParts[0] != "Bearer" {
		return "", models.Unauthorized("token is not of Bearer type",
			fmt.Errorf("invalid access token: token is not of Bearer type, got: %s", tokenParts[0]))
	}
	if len(tokenParts) != 2 {
		return "", models.Unauthorized("token format is invalid: expected 'Bearer <token>'",
			fmt.Errorf("invalid access token: expected 'Bearer <token>', got %d parts", len(tokenParts)))
	}
	return tokenParts[1], nil
}

func (m *middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.Request.Header.Get("Authorization"))
		if err != nil {
			fail(c, err)
			return
		}
		payload, err := m.tm.VerifyToken(token)
		if err != nil {
			fail(c, err)
			return
		}

		Local(c).Authenticate(payload.ID)
		c.Set(userIDKey, payload.ID)
		c.Next()
	}
}

// OptionalAuthenticate identifies the caller when a valid bearer token is
// present and lets the request through anonymously otherwise.
func (m *middleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.Request.Header.Get("Authorization"))
		if err == nil {
			if payload, err := m.tm.VerifyToken(token); err == nil {
				Local(c).Authenticate(payload.ID)
				c.Set(userIDKey, payload.ID)
			}
		}
		c.Next()
	}
}

func (m *middleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := principal(c)
		if err != nil {
			fail(c, err)
			return
		}
		obj := c.Request.URL.Path
		act := c.Request.Method
		dom := KnowDomain(obj)
		allowed, err := m.enforcer.Enforce(uid.String(), dom, obj, act)
		if err != nil {
			fail(c, models.Internal("failed to enforce policy", err))
			return
		}
		if !allowed {
			fail(c, models.Forbidden(fmt.Sprintf("%s %s is not allowed", act, obj)))
			return
		}
		c.Next()
	}
}

// KnowDomain maps a request path to its casbin domain. All routes share one.
func KnowDomain(string) string {
	return services.DefaultDomain
}
