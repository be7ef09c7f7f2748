package service

import (
	"context"

	"github.com/Rrens/fitcoach/internal/archive"
	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTrainingRepository mocks the TrainingRepository interface
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) Upsert(ctx context.Context, t *domain.Training) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrainingRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Training, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Training), args.Error(1)
}

// MockTrainingCache mocks the TrainingCache interface
type MockTrainingCache struct {
	mock.Mock
}

func (m *MockTrainingCache) Get(ctx context.Context, userID uuid.UUID) (*domain.TrainingView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingView), args.Error(1)
}

func (m *MockTrainingCache) Set(ctx context.Context, view *domain.TrainingView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockTrainingCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockArchiver mocks the archive.Archiver interface
type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Put(ctx context.Context, e archive.Entry) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

// MockProvider mocks the llm.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) AvailableModels() []string {
	return []string{"mock-1"}
}

func (m *MockProvider) DefaultModel() string {
	return "mock-1"
}

func (m *MockProvider) IsConfigured() bool {
	return true
}

func (m *MockProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

func newMockRouter(p *MockProvider) *llm.Router {
	r := llm.NewRouter("mock")
	r.RegisterProvider(p)
	return r
}
