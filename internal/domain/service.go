package domain

import "context"

// ContentExtractor turns a page URL into its readable article.
type ContentExtractor interface {
	// Fetch downloads the page and returns its title and clean text.
	// Errors carry ErrFetch, ErrParse or ErrEmptyContent.
	Fetch(ctx context.Context, url string) (*Article, error)
}

// QuizSynthesizer turns article text into a quiz via a language model.
type QuizSynthesizer interface {
	// Generate makes one model round trip. Errors carry ErrGeneration or
	// ErrSchemaParse.
	Generate(ctx context.Context, cleanText string) (*QuizPayload, error)
}

// QuizRepository defines the interface for quiz persistence. There is no
// update or delete.
type QuizRepository interface {
	// Save inserts record, filling in ID and, when zero, DateGenerated.
	Save(ctx context.Context, record *QuizRecord) (*QuizRecord, error)

	// ListSummaries returns every record newest first.
	ListSummaries(ctx context.Context) ([]QuizHistoryItem, error)

	// GetByID returns the record or an ErrNotFound error.
	GetByID(ctx context.Context, id int64) (*QuizRecord, error)
}
