package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/gadgetquiz/internal/models"
)

// MockQuestionRepository is a mock implementation of repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Get(ctx context.Context, id int64) (*models.QuizQuestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizQuestion), args.Error(1)
}

func (m *MockQuestionRepository) RandomUnanswered(ctx context.Context, sessionID int64) (*models.QuizQuestion, *models.Gadget, error) {
	args := m.Called(ctx, sessionID)
	var q *models.QuizQuestion
	var g *models.Gadget
	if args.Get(0) != nil {
		q = args.Get(0).(*models.QuizQuestion)
	}
	if args.Get(1) != nil {
		g = args.Get(1).(*models.Gadget)
	}
	return q, g, args.Error(2)
}
