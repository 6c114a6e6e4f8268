package service

import (
	"context"
	"time"

	"quiz-crew/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockModelBackend ---
type MockModelBackend struct {
	mock.Mock
}

func (m *MockModelBackend) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockModelBackend) ModelID() string {
	return "mock-model"
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) SetIfAbsent(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockGenerationStore ---
type MockGenerationStore struct {
	mock.Mock
}

func (m *MockGenerationStore) Put(ctx context.Context, record *domain.GenerationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGenerationStore) Get(ctx context.Context, generationID string) (*domain.GenerationRecord, error) {
	args := m.Called(ctx, generationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationRecord), args.Error(1)
}
