package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockmate/config"
	"github.com/lshigami/mockmate/database"
	_ "github.com/lshigami/mockmate/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/mockmate/internal/controller"
	feedbackctrl "github.com/lshigami/mockmate/internal/controller/feedback"
	interviewctrl "github.com/lshigami/mockmate/internal/controller/interview"
	"github.com/lshigami/mockmate/internal/logger"
	"github.com/lshigami/mockmate/internal/model"
	"github.com/lshigami/mockmate/internal/repository"
	"github.com/lshigami/mockmate/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MockMate AI Interview API
// @version 1.0
// @description Generates mock interview questions with Gemini and grades answers with feedback and a 0-10 rating.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewMockInterviewRepository,
			repository.NewInterviewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewScoreConverterService,
			service.NewInterviewService,
			service.NewFeedbackService,
		),

		// API Controllers Layer
		fx.Provide(
			interviewctrl.NewInterviewController,
			feedbackctrl.NewFeedbackController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.Env, cfg.LogLevel)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := log.Info()
		switch {
		case param.StatusCode >= http.StatusInternalServerError:
			event = log.Error()
		case param.StatusCode >= http.StatusBadRequest:
			event = log.Warn()
		}
		event.
			Str("method", param.Method).
			Str("path", param.Request.URL.Path).
			Str("query", param.Request.URL.RawQuery).
			Int("status", param.StatusCode).
			Int("bytes", param.BodySize).
			Dur("latency", param.Latency).
			Str("client_ip", param.ClientIP).
			Str("error", param.ErrorMessage).
			Msg("http request")
		return ""
	}))
	r.Use(controller.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) == 0 || cfg.Server.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *interviewctrl.InterviewController,
	feedbackCtrl *feedbackctrl.FeedbackController,
) {
	apiV1 := router.Group("/api/v1")
	interviewCtrl.RegisterRoutes(apiV1)
	feedbackCtrl.RegisterRoutes(apiV1)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Listen synchronously so bind errors fail OnStart.
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}
			log.Info().Str("addr", ln.Addr().String()).Str("swagger", "/swagger/index.html").Msg("MockMate API listening")
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Draining HTTP connections")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.MockInterview{}, &model.InterviewAnswer{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
