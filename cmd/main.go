package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/config"
	"github.com/signlearn/signbridge/database"
	_ "github.com/signlearn/signbridge/docs" // Swagger docs - auto-generated
	adminctrl "github.com/signlearn/signbridge/internal/controller/admin"
	userctrl "github.com/signlearn/signbridge/internal/controller/user"
	"github.com/signlearn/signbridge/internal/logger"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
	"github.com/signlearn/signbridge/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SignBridge API
// @version 1.0
// @description Core API for the sign-language learning platform: gesture recognition dispatch, contribution moderation, daily challenges and proficiency scoring.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewContributionRepository,
			repository.NewChallengeRepository,
			repository.NewTestRepository,
			repository.NewSignRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewChallengeService,
			service.NewModerationService,
			service.NewRecognitionService,
			service.NewScoringService,
			service.NewSignService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewRecognitionController,
			userctrl.NewChallengeController,
			userctrl.NewContributionController,
			userctrl.NewTestController,
			adminctrl.NewModerationController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Gin request logging through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	recognitionCtrl *userctrl.RecognitionController,
	challengeCtrl *userctrl.ChallengeController,
	contributionCtrl *userctrl.ContributionController,
	testCtrl *userctrl.TestController,
	moderationCtrl *adminctrl.ModerationController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		contributionsAdminGroup := adminAPIGroup.Group("/contributions")
		contributionsAdminGroup.GET("", moderationCtrl.List)
		contributionsAdminGroup.POST("/:id/approve", moderationCtrl.Approve)
		contributionsAdminGroup.POST("/:id/reject", moderationCtrl.Reject)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.POST("/recognize", recognitionCtrl.Recognize)
		userAPIGroup.GET("/signs/search", recognitionCtrl.SearchSign)

		userAPIGroup.GET("/challenges/today", challengeCtrl.TodayChallenge)

		userAPIGroup.POST("/contributions", contributionCtrl.Submit)
		userAPIGroup.GET("/contributions", contributionCtrl.List)

		userAPIGroup.GET("/tests/:test_id", testCtrl.GetTest)
		userAPIGroup.POST("/tests/:test_id/submissions", testCtrl.SubmitTest)
		userAPIGroup.GET("/test-prompt", testCtrl.TestPrompt)
		userAPIGroup.POST("/test-prompt/dismiss", testCtrl.DismissTestPrompt)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SignBridge API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Contribution{},
		&model.DailyChallenge{},
		&model.ProficiencyTest{},
		&model.Question{},
		&model.Choice{},
		&model.Sign{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
