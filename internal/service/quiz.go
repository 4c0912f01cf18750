package service

import (
	"context"
	"strings"
	"time"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, url string) (*domain.QuizPayload, error)
	ListHistory(ctx context.Context) ([]dto.QuizHistoryItem, error)
	GetQuizDetail(ctx context.Context, id int64) (*domain.QuizPayload, error)
}

// quizService implements QuizService
type quizService struct {
	extractor   domain.ContentExtractor
	synthesizer domain.QuizSynthesizer
	repo        domain.QuizRepository
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	extractor domain.ContentExtractor,
	synthesizer domain.QuizSynthesizer,
	repo domain.QuizRepository,
) QuizService {
	return &quizService{
		extractor:   extractor,
		synthesizer: synthesizer,
		repo:        repo,
	}
}

// GenerateQuiz fetches the article, has the model write a quiz and stores the
// result. Nothing is written unless every step succeeds.
func (s *quizService) GenerateQuiz(ctx context.Context, url string) (*domain.QuizPayload, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domain.NewInvalidInputError("url: field required")
	}
	log := logger.Get().With(zap.String("url", url))

	start := time.Now()
	article, err := s.extractor.Fetch(ctx, url)
	if err != nil {
		log.Warn("Failed to extract article", zap.Error(err))
		return nil, err
	}
	log.Debug("Article extracted",
		zap.String("title", article.Title),
		zap.Int("text_length", len(article.CleanText)))

	payload, err := s.synthesizer.Generate(ctx, article.CleanText)
	if err != nil {
		log.Error("Failed to generate quiz", zap.Error(err))
		return nil, err
	}

	record := domain.NewQuizRecord(url, article.Title, article.CleanText, *payload)
	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		log.Error("Failed to save quiz", zap.Error(err))
		return nil, err
	}

	log.Info("Quiz generated and saved",
		zap.Int64("id", saved.ID),
		zap.String("title", saved.Title),
		zap.Int("questions", len(payload.Quiz)),
		zap.Duration("elapsed", time.Since(start)))
	return payload, nil
}

// ListHistory implements QuizService
func (s *quizService) ListHistory(ctx context.Context) ([]dto.QuizHistoryItem, error) {
	items, err := s.repo.ListSummaries(ctx)
	if err != nil {
		logger.Get().Error("Failed to list quiz history", zap.Error(err))
		return nil, err
	}
	return dto.NewQuizHistoryItems(items), nil
}

// GetQuizDetail implements QuizService
func (s *quizService) GetQuizDetail(ctx context.Context, id int64) (*domain.QuizPayload, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			logger.Get().Error("Failed to get quiz", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &record.Payload, nil
}
