package handler

import (
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/middleware"
	"wiki-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

const rootMessage = "AI Wiki Quiz Generator API"

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// Root godoc
// @Summary API banner
// @Tags meta
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (h *QuizHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: rootMessage})
}

// GenerateQuiz godoc
// @Summary Generate a quiz from an article
// @Description Fetches the article, asks the language model for a quiz and stores the result
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Article URL"
// @Success 200 {object} domain.QuizPayload
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate_quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedQuizRequestKey).(dto.QuizRequest)

	payload, err := h.service.GenerateQuiz(c.UserContext(), req.URL)
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

// GetHistory godoc
// @Summary List generated quizzes
// @Description Newest first
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizHistoryItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /history [get]
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	items, err := h.service.ListHistory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetQuiz godoc
// @Summary Get a stored quiz
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} domain.QuizPayload
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Locals(middleware.ValidatedQuizIDKey).(int64)

	payload, err := h.service.GetQuizDetail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(payload)
}
