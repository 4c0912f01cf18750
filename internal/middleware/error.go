package middleware

import (
	"errors"
	"net/http"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handler. Every error is rendered as
// {"detail": message}.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals(RequestIDKey)),
		)

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			detail := domainErr.Error()
			if statusCode != http.StatusInternalServerError {
				detail = domainErr.Message
			}

			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.Int("status", statusCode),
				zap.Error(err),
			}
			if statusCode >= http.StatusInternalServerError {
				log.Error("Request failed", fields...)
			} else {
				log.Warn("Request rejected", fields...)
			}
			return c.Status(statusCode).JSON(dto.ErrorResponse{Detail: detail})
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Detail: fiberErr.Message})
		}

		// Handle unknown errors
		log.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrInvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
