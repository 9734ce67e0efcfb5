package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/gadgetquiz/internal/models"
)

// MockAnswerRepository is a mock implementation of repository.AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Exists(ctx context.Context, sessionID, questionID int64) (bool, error) {
	args := m.Called(ctx, sessionID, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnswerRepository) Record(ctx context.Context, answer models.QuizAnswer) (int, error) {
	args := m.Called(ctx, answer)
	return args.Int(0), args.Error(1)
}
