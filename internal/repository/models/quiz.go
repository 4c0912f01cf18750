package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wiki-quiz/internal/domain"
)

// QuizData stores a domain.QuizPayload as JSON text.
type QuizData domain.QuizPayload

// Value implements the driver.Valuer interface
func (d QuizData) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(domain.QuizPayload(d))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (d *QuizData) Scan(value interface{}) error {
	var bytesToParse []byte

	switch v := value.(type) {
	case nil:
		return errors.New("QuizData Scan: payload is NULL")
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuizData Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	var payload domain.QuizPayload
	if err := json.Unmarshal(bytesToParse, &payload); err != nil {
		return fmt.Errorf("QuizData Scan: %w", err)
	}
	*d = QuizData(payload)
	return nil
}

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID             int64          `db:"id"`
	URL            string         `db:"url"`
	Title          string         `db:"title"`
	DateGenerated  time.Time      `db:"date_generated"`
	FullQuizData   QuizData       `db:"full_quiz_data"`
	ScrapedContent sql.NullString `db:"scraped_content"`
}

// QuizSummary is the projection used by the history listing.
type QuizSummary struct {
	ID            int64     `db:"id"`
	URL           string    `db:"url"`
	Title         string    `db:"title"`
	DateGenerated time.Time `db:"date_generated"`
}
