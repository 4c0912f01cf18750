package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/repository/models"
	"wiki-quiz/internal/util"
)

// QuizDatabaseAdapter implements domain.QuizRepository on a sqlx handle.
// Queries use '?' placeholders and are rebound for the connected driver.
type QuizDatabaseAdapter struct {
	db  DBTX
	now func() time.Time
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db DBTX) *QuizDatabaseAdapter {
	return &QuizDatabaseAdapter{db: db, now: time.Now}
}

const insertQuizQuery = `INSERT INTO quizzes (
	url, title, date_generated, full_quiz_data, scraped_content
) VALUES (
	?, ?, ?, ?, ?
) RETURNING id`

const listQuizSummariesQuery = `SELECT id, url, title, date_generated
FROM quizzes
ORDER BY date_generated DESC, id DESC`

const getQuizByIDQuery = `SELECT id, url, title, date_generated, full_quiz_data, scraped_content
FROM quizzes
WHERE id = ?`

// Save implements domain.QuizRepository
func (a *QuizDatabaseAdapter) Save(ctx context.Context, record *domain.QuizRecord) (*domain.QuizRecord, error) {
	if record == nil {
		return nil, domain.NewStorageError("cannot save nil quiz", nil)
	}

	model := fromDomainQuizRecord(record)
	if model.DateGenerated.IsZero() {
		model.DateGenerated = a.now()
	}
	model.DateGenerated = normalizeTime(model.DateGenerated)

	var id int64
	err := a.db.GetContext(ctx, &id, a.db.Rebind(insertQuizQuery),
		model.URL,
		model.Title,
		model.DateGenerated,
		model.FullQuizData,
		model.ScrapedContent,
	)
	if err != nil {
		return nil, domain.NewStorageError("failed to save quiz", err)
	}
	model.ID = id

	return toDomainQuizRecord(model), nil
}

// ListSummaries implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListSummaries(ctx context.Context) ([]domain.QuizHistoryItem, error) {
	var rows []models.QuizSummary
	if err := a.db.SelectContext(ctx, &rows, listQuizSummariesQuery); err != nil {
		return nil, domain.NewStorageError("failed to list quizzes", err)
	}

	items := make([]domain.QuizHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.QuizHistoryItem{
			ID:            row.ID,
			URL:           row.URL,
			Title:         row.Title,
			DateGenerated: row.DateGenerated.UTC(),
		})
	}
	return items, nil
}

// GetByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.QuizRecord, error) {
	var model models.Quiz
	err := a.db.GetContext(ctx, &model, a.db.Rebind(getQuizByIDQuery), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewQuizNotFoundError(id)
		}
		return nil, domain.NewStorageError("failed to get quiz", err)
	}
	return toDomainQuizRecord(&model), nil
}

// normalizeTime keeps timestamps in UTC at the precision both backends store.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func fromDomainQuizRecord(record *domain.QuizRecord) *models.Quiz {
	return &models.Quiz{
		ID:             record.ID,
		URL:            record.URL,
		Title:          record.Title,
		DateGenerated:  record.DateGenerated,
		FullQuizData:   models.QuizData(record.Payload),
		ScrapedContent: util.StringToNullString(record.ScrapedContent),
	}
}

func toDomainQuizRecord(model *models.Quiz) *domain.QuizRecord {
	return &domain.QuizRecord{
		ID:             model.ID,
		URL:            model.URL,
		Title:          model.Title,
		DateGenerated:  model.DateGenerated.UTC(),
		Payload:        domain.QuizPayload(model.FullQuizData),
		ScrapedContent: model.ScrapedContent.String,
	}
}

var _ domain.QuizRepository = (*QuizDatabaseAdapter)(nil)
