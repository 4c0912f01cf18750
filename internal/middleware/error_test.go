package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "not found",
			err:        domain.NewQuizNotFoundError(7),
			wantStatus: http.StatusNotFound,
			wantDetail: domain.QuizNotFoundMessage,
		},
		{
			name:       "invalid input",
			err:        domain.NewInvalidInputError("url: field required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "url: field required",
		},
		{
			name:       "pipeline error keeps the cause",
			err:        domain.NewGenerationError(errors.New("quota exceeded")),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "quiz generation failed: quota exceeded",
		},
		{
			name:       "wrapped domain error",
			err:        errors.Join(errors.New("outer"), domain.NewEmptyContentError()),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "article body is empty or could not be parsed",
		},
		{
			name:       "fiber error",
			err:        fiber.NewError(http.StatusServiceUnavailable, "database unavailable"),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "database unavailable",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.wantDetail, out.Detail)
		})
	}
}

func TestValidationMiddleware_QuizID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/quiz/:id", NewValidationMiddleware().ValidateQuizID(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals(ValidatedQuizIDKey)})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/quiz/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
