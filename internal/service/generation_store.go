package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-crew/internal/cache"
	"quiz-crew/internal/domain"
	"quiz-crew/internal/logger"

	"go.uber.org/zap"
)

// GenerationStore keeps successful generations so a client can replay them by ID.
type GenerationStore interface {
	Put(ctx context.Context, record *domain.GenerationRecord) error
	Get(ctx context.Context, generationID string) (*domain.GenerationRecord, error)
}

type cacheGenerationStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewGenerationStore stores records through cache with the given TTL. A nil
// cache yields a no-op store.
func NewGenerationStore(c domain.Cache, ttl time.Duration) GenerationStore {
	if c == nil {
		logger.Get().Warn("GenerationStore initialized with nil cache. Generations will not be replayable.")
		return &noopGenerationStore{}
	}
	return &cacheGenerationStore{cache: c, ttl: ttl}
}

// Put writes the record once; generation IDs are never overwritten.
func (s *cacheGenerationStore) Put(ctx context.Context, record *domain.GenerationRecord) error {
	if record == nil || record.ID == "" {
		return domain.NewInvalidInputError("cannot store a generation without id")
	}

	key := cache.GenerationRecordKey(record.ID)
	data, err := json.Marshal(record)
	if err != nil {
		return domain.NewInternalError("failed to marshal generation record", err)
	}

	stored, err := s.cache.SetIfAbsent(ctx, key, string(data), s.ttl)
	if err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to store generation record for key %s", key), err)
	}
	if !stored {
		return domain.NewInternalError(fmt.Sprintf("generation record %s already exists", record.ID), nil)
	}
	logger.Get().Debug("Stored generation record", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *cacheGenerationStore) Get(ctx context.Context, generationID string) (*domain.GenerationRecord, error) {
	key := cache.GenerationRecordKey(generationID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("generation %s not found", generationID))
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read generation record for key %s", key), err)
	}
	if data == "" {
		return nil, domain.NewNotFoundError(fmt.Sprintf("generation %s not found", generationID))
	}

	var record domain.GenerationRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal generation record for key %s", key), err)
	}
	return &record, nil
}

// noopGenerationStore is used when Redis is not configured.
type noopGenerationStore struct{}

func (s *noopGenerationStore) Put(ctx context.Context, record *domain.GenerationRecord) error {
	return nil
}

func (s *noopGenerationStore) Get(ctx context.Context, generationID string) (*domain.GenerationRecord, error) {
	return nil, domain.NewNotFoundError(fmt.Sprintf("generation %s not found", generationID))
}
