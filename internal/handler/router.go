package handler

import (
	"strings"

	"wiki-quiz/internal/config"
	"wiki-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with middleware and every route.
func NewApp(cfg config.ServerConfig, quizHandler *QuizHandler, healthHandler *HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "wiki-quiz",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(newCORS(cfg.CORSOrigins))

	validator := middleware.NewValidationMiddleware()

	app.Get("/", quizHandler.Root)
	app.Post("/generate_quiz", validator.ValidateQuizRequest(), quizHandler.GenerateQuiz)
	app.Get("/history", quizHandler.GetHistory)
	app.Get("/quiz/:id", validator.ValidateQuizID(), quizHandler.GetQuiz)
	if healthHandler != nil {
		app.Get("/healthz", healthHandler.Healthz)
	}

	return app
}

func newCORS(origins string) fiber.Handler {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders:    middleware.RequestIDHeader,
		AllowCredentials: origins != "*",
		MaxAge:           300,
	})
}
