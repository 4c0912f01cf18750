package middleware

import (
	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedQuizRequestKey = "validated_quiz_request"
	ValidatedQuizIDKey      = "validated_quiz_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuizRequest parses and checks the POST /generate_quiz body.
func (vm *ValidationMiddleware) ValidateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.QuizRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("request body must be a JSON object with a url field")
		}
		if err := vm.validator.ValidateQuizRequest(&req); err != nil {
			return err
		}

		c.Locals(ValidatedQuizRequestKey, req)
		return c.Next()
	}
}

// ValidateQuizID parses the :id path parameter.
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := vm.validator.ParseQuizID(c.Params("id"))
		if err != nil {
			return err
		}

		c.Locals(ValidatedQuizIDKey, id)
		return c.Next()
	}
}
