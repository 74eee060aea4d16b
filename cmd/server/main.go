package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/technoschool/technoschool-api/api/swagger"
	"github.com/technoschool/technoschool-api/internal/content"
	"github.com/technoschool/technoschool-api/internal/handler"
	"github.com/technoschool/technoschool-api/internal/middleware"
	"github.com/technoschool/technoschool-api/internal/migrations"
	"github.com/technoschool/technoschool-api/internal/repository"
	"github.com/technoschool/technoschool-api/internal/service"
	"github.com/technoschool/technoschool-api/pkg/config"
	"github.com/technoschool/technoschool-api/pkg/database"
	"github.com/technoschool/technoschool-api/pkg/export"
	"github.com/technoschool/technoschool-api/pkg/logger"
	corsmiddleware "github.com/technoschool/technoschool-api/pkg/middleware/cors"
	reqidmiddleware "github.com/technoschool/technoschool-api/pkg/middleware/requestid"
	"github.com/technoschool/technoschool-api/web"
)

// @title TechnoSchool API
// @version 1.0.0
// @description Marketing site backend: contact/enrollment submissions and user management
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck
	sugar := logr.Sugar()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(ctx, db.DB); err != nil {
		sugar.Fatalw("failed to run migrations", "error", err)
	}

	collections := content.Load(logr)
	validate := validator.New()

	contactRepo := repository.NewContactRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	metricsSvc := service.NewMetricsService()
	contactSvc := service.NewContactService(contactRepo, validate, metricsSvc, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, validate, metricsSvc, logr)
	userSvc := service.NewUserService(userRepo, validate, metricsSvc, logr)
	statsSvc := service.NewStatsService(contactRepo, enrollmentRepo, userRepo, metricsSvc, logr)

	contactHandler := handler.NewContactHandler(contactSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	userHandler := handler.NewUserHandler(userSvc)
	statsHandler := handler.NewStatsHandler(statsSvc, metricsSvc)
	courseHandler := handler.NewCourseHandler(collections, export.NewSyllabusExporter())
	pageHandler, err := handler.NewPageHandler(collections, logr)
	if err != nil {
		sugar.Fatalw("failed to build page handler", "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/", pageHandler.Index)
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		sugar.Fatalw("failed to mount static assets", "error", err)
	}
	r.StaticFS("/static", http.FS(staticFS))

	api := r.Group("/api")
	{
		api.GET("/health", statsHandler.Health)
		api.POST("/contact", contactHandler.Submit)
		api.GET("/contacts", contactHandler.List)
		api.POST("/enroll", enrollmentHandler.Enroll)
		api.GET("/enrollments", enrollmentHandler.List)
		api.GET("/users", userHandler.List)
		api.POST("/users", userHandler.Create)
		api.DELETE("/users/:id", userHandler.Delete)
		api.GET("/stats", statsHandler.Get)
		api.GET("/courses", courseHandler.List)
		api.GET("/courses/:id", courseHandler.Get)
		api.GET("/courses/:id/syllabus", courseHandler.Syllabus)
	}

	r.GET("/metrics", statsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		sugar.Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	sugar.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server shutdown failed", "error", err)
	}
}
