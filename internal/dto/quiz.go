package dto

import (
	"time"

	"wiki-quiz/internal/domain"
)

// QuizRequest is the body of POST /generate_quiz
// @Description Article to build a quiz from
type QuizRequest struct {
	URL string `json:"url" validate:"required,url" example:"https://en.wikipedia.org/wiki/Alan_Turing"`
}

// QuizHistoryItem is one entry of GET /history
// @Description Summary of a previously generated quiz
type QuizHistoryItem struct {
	ID            int64     `json:"id" example:"1"`
	URL           string    `json:"url" example:"https://en.wikipedia.org/wiki/Alan_Turing"`
	Title         string    `json:"title" example:"Alan Turing"`
	DateGenerated time.Time `json:"date_generated"`
}

// NewQuizHistoryItems converts store summaries to their response shape.
func NewQuizHistoryItems(items []domain.QuizHistoryItem) []QuizHistoryItem {
	out := make([]QuizHistoryItem, 0, len(items))
	for _, item := range items {
		out = append(out, QuizHistoryItem{
			ID:            item.ID,
			URL:           item.URL,
			Title:         item.Title,
			DateGenerated: item.DateGenerated,
		})
	}
	return out
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail" example:"Quiz not found"`
}

// MessageResponse is the body of GET /
type MessageResponse struct {
	Message string `json:"message" example:"AI Wiki Quiz Generator API"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
