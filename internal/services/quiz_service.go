package services

import (
	"context"

	"github.com/vytor/gadgetquiz/internal/errors"
	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/repository"
)

// QuizService handles question selection and gadget reference data
type QuizService interface {
	// GetRandomQuestion returns a random question the session has not yet
	// answered, or nil when every question has been answered.
	GetRandomQuestion(ctx context.Context, sessionID int64) (*models.QuizQuestionWithOptions, error)
	ListGadgets(ctx context.Context) ([]models.Gadget, error)
}

type quizService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
	gadgetRepo   repository.GadgetRepository
}

// NewQuizService creates a new QuizService
func NewQuizService(sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository, gadgetRepo repository.GadgetRepository) QuizService {
	return &quizService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		gadgetRepo:   gadgetRepo,
	}
}

func (s *quizService) GetRandomQuestion(ctx context.Context, sessionID int64) (*models.QuizQuestionWithOptions, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting random question: session_id=%d", sessionID)

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("game session", sessionID)
	}

	question, gadget, err := s.questionRepo.RandomUnanswered(ctx, sessionID)
	if err != nil {
		log.Error("failed to pick random question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if question == nil {
		log.Debug("no unanswered questions left: session_id=%d", sessionID)
		return nil, nil
	}

	return &models.QuizQuestionWithOptions{
		ID:           question.ID,
		GadgetID:     question.GadgetID,
		QuestionText: question.QuestionText,
		Options: []models.QuestionOption{
			{Key: "A", Value: question.OptionA},
			{Key: "B", Value: question.OptionB},
			{Key: "C", Value: question.OptionC},
			{Key: "D", Value: question.OptionD},
		},
		Gadget: gadget,
	}, nil
}

func (s *quizService) ListGadgets(ctx context.Context) ([]models.Gadget, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing gadgets")

	gadgets, err := s.gadgetRepo.List(ctx)
	if err != nil {
		log.Error("failed to list gadgets: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return gadgets, nil
}
