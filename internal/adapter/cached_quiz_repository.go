package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wiki-quiz/internal/cache"
	"wiki-quiz/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedQuizRepository is a read-through cache in front of a QuizRepository.
// Records are immutable, so only GetByID is cached. The only eviction is of
// entries that no longer decode.
type CachedQuizRepository struct {
	next    domain.QuizRepository
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
	logger  *zap.Logger
}

// NewCachedQuizRepository wraps next. A zero ttl keeps entries until Redis evicts them.
func NewCachedQuizRepository(next domain.QuizRepository, c domain.Cache, ttl time.Duration, logger *zap.Logger) *CachedQuizRepository {
	return &CachedQuizRepository{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Save implements domain.QuizRepository
func (r *CachedQuizRepository) Save(ctx context.Context, record *domain.QuizRecord) (*domain.QuizRecord, error) {
	return r.next.Save(ctx, record)
}

// ListSummaries implements domain.QuizRepository
func (r *CachedQuizRepository) ListSummaries(ctx context.Context) ([]domain.QuizHistoryItem, error) {
	return r.next.ListSummaries(ctx)
}

// GetByID implements domain.QuizRepository
func (r *CachedQuizRepository) GetByID(ctx context.Context, id int64) (*domain.QuizRecord, error) {
	cacheKey := cache.QuizRecordKey(id)

	cached, err := r.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		var record domain.QuizRecord
		errDecode := json.Unmarshal([]byte(cached), &record)
		if errDecode == nil {
			r.logger.Debug("Quiz cache hit", zap.Int64("id", id))
			return &record, nil
		}
		r.logger.Warn("Failed to decode cached quiz", zap.String("cacheKey", cacheKey), zap.Error(errDecode))
		if errDel := r.cache.Delete(ctx, cacheKey); errDel != nil {
			r.logger.Warn("Failed to evict cached quiz", zap.String("cacheKey", cacheKey), zap.Error(errDel))
		}
	case errors.Is(err, domain.ErrCacheMiss):
		r.logger.Debug("Quiz cache miss", zap.Int64("id", id))
	default:
		r.logger.Warn("Failed to read quiz cache", zap.String("cacheKey", cacheKey), zap.Error(err))
	}

	res, err, _ := r.sfGroup.Do(cacheKey, func() (interface{}, error) {
		record, fetchErr := r.next.GetByID(ctx, id)
		if fetchErr != nil {
			return nil, fetchErr
		}

		data, errEncode := json.Marshal(record)
		if errEncode != nil {
			r.logger.Warn("Failed to encode quiz for caching", zap.Int64("id", id), zap.Error(errEncode))
			return record, nil
		}
		if errSet := r.cache.Set(ctx, cacheKey, string(data), r.ttl); errSet != nil {
			r.logger.Warn("Failed to write quiz cache", zap.String("cacheKey", cacheKey), zap.Error(errSet))
		}
		return record, nil
	})
	if err != nil {
		return nil, err
	}

	record, ok := res.(*domain.QuizRecord)
	if !ok {
		return nil, domain.NewStorageError("failed to get quiz", fmt.Errorf("unexpected type from singleflight.Do: %T", res))
	}
	// Callers sharing a singleflight result each get their own copy.
	out := *record
	return &out, nil
}

var _ domain.QuizRepository = (*CachedQuizRepository)(nil)
