package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"video-sharing/handlers"
	"video-sharing/models"
)

type Handlers struct {
	UserHandler         handlers.User
	VideoHandler        handlers.Video
	CommentHandler      handlers.Comment
	SubscriptionHandler handlers.Subscription
	HistoryHandler      handlers.History
	CategoryHandler     handlers.Category
	SearchHandler       handlers.Search
	Health              gin.HandlerFunc
	Guards              handlers.Guards
	Middlewares         handlers.Middleware
	MaxUploadBytes      int64
}

type route struct {
	method      string
	path        string
	handler     gin.HandlerFunc
	middlewares []gin.HandlerFunc
}

func RegisterRoutes(engine *gin.Engine, h Handlers) {
	mw, g := h.Middlewares, h.Guards
	private := func(extra ...gin.HandlerFunc) []gin.HandlerFunc {
		return append([]gin.HandlerFunc{mw.Authenticate(), mw.Authorize()}, extra...)
	}
	videoExists := g.EnsureExists(models.EntityVideo, handlers.VideoKey)
	userExists := g.EnsureExists(models.EntityUser, handlers.UserKey)
	commentExists := []gin.HandlerFunc{
		handlers.Check(handlers.CommentPathOf, handlers.CommentPathRules...),
		g.EnsureExists(models.EntityComment, handlers.CommentKey),
	}
	pageOf := handlers.QueryOf[models.PageQuery]

	routeMap := []route{
		{
			method:  http.MethodGet,
			path:    "/swagger/*any",
			handler: ginSwagger.WrapHandler(swaggerFiles.Handler),
		},

		// users
		{
			method:  http.MethodPost,
			path:    "/auth/register",
			handler: h.UserHandler.RegisterUser,
		},
		{
			method:  http.MethodPost,
			path:    "/auth/login",
			handler: h.UserHandler.LoginUser,
		},
		{
			method:      http.MethodGet,
			path:        "/users/:username",
			handler:     h.UserHandler.GetChannel,
			middlewares: []gin.HandlerFunc{userExists},
		},
		{
			method:      http.MethodGet,
			path:        "/users/:username/videos",
			handler:     handlers.Validated(pageOf, h.VideoHandler.ListByChannel, handlers.PageRules...),
			middlewares: []gin.HandlerFunc{userExists},
		},
		{
			method:      http.MethodPost,
			path:        "/users/:username/subscription",
			handler:     h.SubscriptionHandler.Subscribe,
			middlewares: private(userExists),
		},
		{
			method:      http.MethodDelete,
			path:        "/users/:username/subscription",
			handler:     h.SubscriptionHandler.Unsubscribe,
			middlewares: private(userExists),
		},
		{
			method:      http.MethodGet,
			path:        "/me",
			handler:     h.UserHandler.Me,
			middlewares: private(),
		},
		{
			method: http.MethodPatch,
			path:   "/me",
			handler: handlers.Validated(handlers.JSONOf[models.UpdateUserRequest],
				h.UserHandler.UpdateMe, handlers.UpdateMeRules...),
			middlewares: private(),
		},

		// videos
		{
			method: http.MethodPost,
			path:   "/videos",
			handler: handlers.Validated(handlers.UploadVideoFormOf(h.MaxUploadBytes),
				h.VideoHandler.Upload, handlers.UploadVideoRules...),
			middlewares: private(),
		},
		{
			method:      http.MethodGet,
			path:        "/videos",
			handler:     handlers.Validated(pageOf, h.VideoHandler.ListOwn, handlers.PageRules...),
			middlewares: private(),
		},
		{
			method:      http.MethodGet,
			path:        "/videos/:video_id",
			handler:     h.VideoHandler.Get,
			middlewares: []gin.HandlerFunc{mw.OptionalAuthenticate(), videoExists},
		},
		{
			method: http.MethodPatch,
			path:   "/videos/:video_id",
			handler: handlers.Validated(handlers.UpdateVideoFormOf(h.MaxUploadBytes),
				h.VideoHandler.Update, handlers.UpdateVideoRules...),
			middlewares: private(videoExists, g.LoadVideo(), g.OwnVideo()),
		},
		{
			method:      http.MethodDelete,
			path:        "/videos/:video_id",
			handler:     h.VideoHandler.Delete,
			middlewares: private(videoExists, g.LoadVideo(), g.OwnVideo()),
		},
		{
			method: http.MethodPost,
			path:   "/videos/:video_id/reaction",
			handler: handlers.Validated(handlers.JSONOf[models.ReactionBody],
				h.VideoHandler.React, handlers.ReactionRules...),
			middlewares: private(videoExists),
		},
		{
			method:      http.MethodDelete,
			path:        "/videos/:video_id/reaction",
			handler:     h.VideoHandler.Unreact,
			middlewares: private(videoExists),
		},

		// comments
		{
			method:      http.MethodGet,
			path:        "/videos/:video_id/comments",
			handler:     handlers.Validated(pageOf, h.CommentHandler.List, handlers.PageRules...),
			middlewares: []gin.HandlerFunc{videoExists},
		},
		{
			method: http.MethodPost,
			path:   "/videos/:video_id/comments",
			handler: handlers.Validated(handlers.JSONOf[models.CommentBody],
				h.CommentHandler.Create, handlers.CommentRules...),
			middlewares: private(videoExists),
		},
		{
			method: http.MethodPatch,
			path:   "/videos/:video_id/comments/:comment_id",
			handler: handlers.Validated(handlers.JSONOf[models.CommentBody],
				h.CommentHandler.Update, handlers.CommentRules...),
			middlewares: private(append(commentExists, g.LoadComment(), g.OwnComment())...),
		},
		{
			method:      http.MethodDelete,
			path:        "/videos/:video_id/comments/:comment_id",
			handler:     h.CommentHandler.Delete,
			middlewares: private(append(commentExists, g.LoadComment(), g.OwnComment())...),
		},
		{
			method: http.MethodPost,
			path:   "/videos/:video_id/comments/:comment_id/reaction",
			handler: handlers.Validated(handlers.JSONOf[models.ReactionBody],
				h.CommentHandler.React, handlers.ReactionRules...),
			middlewares: private(commentExists...),
		},
		{
			method:      http.MethodDelete,
			path:        "/videos/:video_id/comments/:comment_id/reaction",
			handler:     h.CommentHandler.Unreact,
			middlewares: private(commentExists...),
		},

		// subscriptions
		{
			method:      http.MethodGet,
			path:        "/subscriptions",
			handler:     handlers.Validated(pageOf, h.SubscriptionHandler.List, handlers.PageRules...),
			middlewares: private(),
		},
		{
			method:      http.MethodGet,
			path:        "/subscriptions/videos",
			handler:     handlers.Validated(pageOf, h.SubscriptionHandler.Feed, handlers.PageRules...),
			middlewares: private(),
		},

		{
			method:  http.MethodGet,
			path:    "/categories",
			handler: h.CategoryHandler.List,
		},

		// histories
		{
			method:      http.MethodGet,
			path:        "/histories",
			handler:     handlers.Validated(pageOf, h.HistoryHandler.List, handlers.PageRules...),
			middlewares: private(),
		},
		{
			method:      http.MethodDelete,
			path:        "/histories",
			handler:     h.HistoryHandler.Clear,
			middlewares: private(),
		},

		// search
		{
			method: http.MethodGet,
			path:   "/search/videos",
			handler: handlers.Validated(handlers.QueryOf[models.SearchVideosQuery],
				h.SearchHandler.Videos, handlers.SearchVideosRules...),
		},
		{
			method: http.MethodGet,
			path:   "/search/users",
			handler: handlers.Validated(handlers.QueryOf[models.SearchUsersQuery],
				h.SearchHandler.Users, handlers.SearchUsersRules...),
		},
	}

	group := engine.Group("v1")
	for _, r := range routeMap {
		chain := append(append([]gin.HandlerFunc{}, r.middlewares...), r.handler)
		group.Handle(r.method, r.path, chain...)
	}

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if h.Health != nil {
		engine.GET("/healthz", h.Health)
	}
}
