package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yash12-git/FitPlanHub/internal/config"
	"github.com/yash12-git/FitPlanHub/internal/handlers"
	"github.com/yash12-git/FitPlanHub/internal/middleware"
	"github.com/yash12-git/FitPlanHub/internal/repository"
	"github.com/yash12-git/FitPlanHub/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	memberRepo := repository.NewMemberRepository(db)
	programRepo := repository.NewProgramRepository(db)
	followRepo := repository.NewFollowRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	authService := services.NewAuthService(memberRepo)
	catalogService := services.NewCatalogService(programRepo)
	socialService := services.NewSocialService(db, memberRepo, followRepo)
	enrollmentService := services.NewEnrollmentService(db, programRepo)
	feedService := services.NewFeedService(followRepo, enrollmentRepo, programRepo)

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret, cfg.SessionTTL)
	programHandler := handlers.NewProgramHandler(catalogService)
	socialHandler := handlers.NewSocialHandler(socialService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	feedHandler := handlers.NewFeedHandler(feedService)

	authRequired := middleware.AuthRequired(cfg.JWTSecret, memberRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authRequired, authHandler.Me)

	authProtected := api.Group("/v1", authRequired)

	authProtected.Post("/programs", programHandler.PublishProgram)
	authProtected.Get("/programs/mine", programHandler.ListMyPrograms)
	authProtected.Get("/feed", feedHandler.GetFeed)
	authProtected.Get("/coaches", socialHandler.ListCoaches)
	authProtected.Post("/enroll/:programId", enrollmentHandler.Enroll)
	authProtected.Post("/connect/:coachId", socialHandler.ToggleConnection)
}
