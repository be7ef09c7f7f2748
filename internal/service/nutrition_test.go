package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/Rrens/fitcoach/internal/llm"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newNutritionService(p *MockProvider, repo *MockTrainingRepository) *NutritionService {
	oracle := NewRouterOracle(newMockRouter(p), OracleParams{MaxTokens: 800, Temperature: 0.7, TopP: 0.9})
	svc := NewNutritionService(oracle, repo)
	svc.now = fixedTime
	return svc
}

func TestNutritionService_Chat(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("answer rendered with plan context", func(t *testing.T) {
		provider := new(MockProvider)
		repo := new(MockTrainingRepository)

		plan := training.Fallback(training.Profile{DaysPerWeek: 3, Experience: training.Beginner, Goal: training.MuscleGain}, fixedTime())
		repo.On("GetByUserID", ctx, userID).Return(domain.NewTraining(userID, plan, fixedTime()), nil)
		provider.On("Complete", mock.Anything, mock.MatchedBy(func(r llm.Request) bool {
			return strings.Contains(r.System, `"diasSemana": 3`) && r.Prompt == "O que comer antes do treino?" && r.MaxTokens == 800
		}), "").Return(&llm.Response{Text: "**Banana** com aveia.", Model: "mock-1"}, nil)

		reply := newNutritionService(provider, repo).Chat(ctx, userID, "  O que comer antes do treino? ")
		assert.True(t, reply.Success)
		assert.Equal(t, "**Banana** com aveia.", reply.Message)
		assert.Contains(t, reply.HTML, "<strong>Banana</strong>")
		assert.Equal(t, "mock-1", reply.Model)
		assert.Equal(t, fixedTime(), reply.Timestamp)
		provider.AssertExpectations(t)
	})

	t.Run("no plan uses placeholder context", func(t *testing.T) {
		provider := new(MockProvider)
		repo := new(MockTrainingRepository)

		repo.On("GetByUserID", ctx, userID).Return(nil, nil)
		provider.On("Complete", mock.Anything, mock.MatchedBy(func(r llm.Request) bool {
			return strings.HasSuffix(r.System, noTrainingContext)
		}), "").Return(&llm.Response{Text: "ok", Model: "mock-1"}, nil)

		reply := newNutritionService(provider, repo).Chat(ctx, userID, "Oi")
		assert.True(t, reply.Success)
		provider.AssertExpectations(t)
	})

	t.Run("oracle failure gives friendly message", func(t *testing.T) {
		provider := new(MockProvider)
		repo := new(MockTrainingRepository)

		repo.On("GetByUserID", ctx, userID).Return(nil, errors.New("db down"))
		provider.On("Complete", mock.Anything, mock.Anything, "").Return(nil, llm.ErrRateLimited)

		reply := newNutritionService(provider, repo).Chat(ctx, userID, "Oi")
		assert.False(t, reply.Success)
		assert.Equal(t, nutritionUnavailable, reply.Message)
		assert.Empty(t, reply.HTML)
	})

	t.Run("blank answer", func(t *testing.T) {
		provider := new(MockProvider)
		repo := new(MockTrainingRepository)

		repo.On("GetByUserID", ctx, userID).Return(nil, nil)
		provider.On("Complete", mock.Anything, mock.Anything, "").Return(&llm.Response{Text: "   "}, nil)

		reply := newNutritionService(provider, repo).Chat(ctx, userID, "Oi")
		assert.False(t, reply.Success)
		assert.Equal(t, nutritionEmpty, reply.Message)
	})
}
