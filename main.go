package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medblog/api/router"
	"medblog/assets"
	"medblog/auth"
	"medblog/config"
	"medblog/db"
	"medblog/imagegen"
	"medblog/logger"
	"medblog/mailer"
	"medblog/pipeline"
	"medblog/replicate"
	"medblog/repositories"
	"medblog/scheduler"
	"medblog/services"
	"medblog/textgen"
	"medblog/topics"
)

// @title        medblog API
// @version      1.0
// @description  Blog content platform with scheduled AI article generation.
// @BasePath     /
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	if err := config.ValidateRequiredEnv(); err != nil {
		logger.ErrorWithFields("missing required environment", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	cfg := config.GetConfig()

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.ErrorWithFields("failed to initialize MongoDB", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	blogRepo := repositories.NewBlogRepository(db.Database())
	writeRepo := repositories.NewWriteRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())
	commentRepo := repositories.NewCommentRepository(db.Database())
	contactRepo := repositories.NewContactRepository(db.Database())

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.ErrorWithFields("failed to initialize JWT manager", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	illustrator := replicate.NewClient()

	authSvc := services.NewAuthService(userRepo, jwtManager, mailer.NewFromEnv())
	blogSvc := services.NewBlogService(blogRepo, writeRepo)
	writeSvc := services.NewWriteService(writeRepo, illustrator)
	commentSvc := services.NewCommentService(commentRepo)
	userSvc := services.NewUserService(userRepo, blogRepo, writeRepo)
	contactSvc := services.NewContactService(contactRepo)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.ErrorWithFields("failed to create upload directory", logger.Fields{"dir": uploadDir, "error": err.Error()})
		os.Exit(1)
	}

	sched := scheduler.New()
	if runner := buildRunner(ctx, cfg.Generation, cfg.Topics, blogRepo); runner != nil {
		interval := time.Duration(cfg.Generation.HourlyIntervalMinutes) * time.Minute
		sched.Add("hourly-generation", interval, func(ctx context.Context) {
			if _, err := runner.Run(ctx); err != nil && !errors.Is(err, pipeline.ErrRunInProgress) {
				logger.ErrorWithFields("scheduled generation run failed", logger.Fields{"error": err.Error()})
			}
		})
		sched.Add("daily-batch", 24*time.Hour, func(ctx context.Context) {
			runner.RunBatch(ctx, cfg.Generation.DailyBatchSize)
		})
		sched.Start()
		defer sched.Stop()
	}

	handler := router.New(router.Deps{
		JWT:        jwtManager,
		Auth:       authSvc,
		Blogs:      blogSvc,
		Writes:     writeSvc,
		Comments:   commentSvc,
		Users:      userSvc,
		Contacts:   contactSvc,
		UploadDir:  uploadDir,
		ClientDist: os.Getenv("CLIENT_DIST"),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		logger.InfoWithFields("http server listening", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("http server stopped", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WarnWithFields("http server shutdown incomplete", logger.Fields{"error": err.Error()})
	}
	logger.InfoWithFields("shutdown complete", nil)
}

// buildRunner wires the generation pipeline. The pipeline is optional: when
// the AI or asset-store credentials are absent the server still serves the
// API, it just does not generate content.
func buildRunner(ctx context.Context, gen config.GenerationConfig, catalog []string, blogRepo *repositories.BlogRepository) *pipeline.Runner {
	textClient, err := textgen.NewClient(ctx, gen.TextModel)
	if err != nil {
		logger.WarnWithFields("content generation disabled", logger.Fields{"error": err.Error()})
		return nil
	}
	assetClient, err := assets.NewFromEnv()
	if err != nil {
		logger.WarnWithFields("content generation disabled", logger.Fields{"error": err.Error()})
		return nil
	}

	return pipeline.NewRunner(
		topics.NewSelector(catalog),
		textClient,
		imagegen.NewClient(gen.ImageModelURL),
		assetClient,
		blogRepo,
		pipeline.Config{
			ImageFolder:         gen.ImageFolder,
			FallbackFolder:      gen.FallbackFolder,
			PlaceholderImageURL: gen.PlaceholderImageURL,
		},
	)
}
