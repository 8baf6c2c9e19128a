package initiator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"video-sharing/database/db"
	"video-sharing/handlers"
	"video-sharing/routing"
	"video-sharing/services"
	"video-sharing/utils"
)

func Init() error {
	config, err := LoadConfig("./config")
	if err != nil {
		return err
	}
	logger, err := NewLogger(config.IsDevelopment())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := config.DSN()
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := RunMigrations("file://./database/schema", config.Database.Name, dsn); err != nil {
		return err
	}
	logger.Info("migrations run successfully")

	enforcer, err := NewEnforcer(pool, logger, config.Casbin.Path)
	if err != nil {
		return err
	}
	logger.Info("enforcer created successfully")

	minioClient, err := InitMinio(ctx, logger, config)
	if err != nil {
		return err
	}
	rdb := NewRedisClient(ctx, logger, config)
	defer rdb.Close()

	tempDir := config.Server.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}

	tm := utils.NewTokenManager(config.Token.Key, config.Token.Duration)
	store := db.NewStore(pool)

	// services
	static := services.NewMinioStore(logger, minioClient, config)
	streamer := services.NewRedisStreamer(config.Redis.Stream, logger, rdb)
	userService := services.NewUser(store, tm, enforcer)
	videoService := services.NewVideo(logger, store, static, services.NewFFmpeg(), streamer, tempDir)
	commentService := services.NewComment(store)
	reactionService := services.NewReaction(store)

	// http handlers
	middlewares := handlers.NewMiddleware(tm, enforcer, logger, config.Server.Timeout)
	guards := handlers.NewGuards(services.NewFinder(store), videoService, commentService, enforcer)

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.MaxMultipartMemory = config.Server.MaxUploadBytes
	engine.Use(gin.Recovery(), middlewares.Metrics())
	if config.IsDevelopment() {
		engine.Use(middlewares.RequestLogger())
	}
	engine.Use(
		middlewares.RequestContext(),
		middlewares.ErrorMiddleware(),
		middlewares.Cors(),
		middlewares.Timeout(),
	)

	routing.RegisterRoutes(engine, routing.Handlers{
		UserHandler:         handlers.NewUser(userService),
		VideoHandler:        handlers.NewVideo(videoService, reactionService, tempDir),
		CommentHandler:      handlers.NewComment(commentService, reactionService),
		SubscriptionHandler: handlers.NewSubscription(services.NewSubscription(store, static)),
		HistoryHandler:      handlers.NewHistory(services.NewHistory(store, static)),
		CategoryHandler:     handlers.NewCategory(services.NewCategory(store, config.Cache.Size, config.Cache.TTL)),
		SearchHandler:       handlers.NewSearch(services.NewSearch(store, static)),
		Health:              handlers.Health(pool),
		Guards:              guards,
		Middlewares:         middlewares,
		MaxUploadBytes:      config.Server.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + config.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
