package service

import (
	"context"

	"wiki-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockContentExtractor ---
type MockContentExtractor struct {
	mock.Mock
}

func (m *MockContentExtractor) Fetch(ctx context.Context, url string) (*domain.Article, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

// --- MockQuizSynthesizer ---
type MockQuizSynthesizer struct {
	mock.Mock
}

func (m *MockQuizSynthesizer) Generate(ctx context.Context, cleanText string) (*domain.QuizPayload, error) {
	args := m.Called(ctx, cleanText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizPayload), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Save(ctx context.Context, record *domain.QuizRecord) (*domain.QuizRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}

func (m *MockQuizRepository) ListSummaries(ctx context.Context) ([]domain.QuizHistoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizHistoryItem), args.Error(1)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id int64) (*domain.QuizRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}
