package services

import (
	"context"
	stderrors "errors"
	"math"
	"time"

	"github.com/vytor/gadgetquiz/internal/errors"
	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/repository"
)

// PointsPerCorrectAnswer is the score awarded for each correct answer.
const PointsPerCorrectAnswer = 10

// DefaultLeaderboardLimit is used when no limit is given.
const DefaultLeaderboardLimit = 10

// GameService handles session lifecycle, answer submission and scoring
type GameService interface {
	CreateSession(ctx context.Context, playerName string) (*models.GameSession, error)
	EndSession(ctx context.Context, sessionID int64) (*models.GameSession, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID int64, selectedAnswer string) (*models.AnswerResult, error)
	GetStats(ctx context.Context, sessionID int64) (*models.GameStats, error)
	GetLeaderboard(ctx context.Context, limit int) ([]models.GameSession, error)
}

type gameService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewGameService creates a new GameService
func NewGameService(sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) GameService {
	return &gameService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

func (s *gameService) CreateSession(ctx context.Context, playerName string) (*models.GameSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating game session: player_name=%s", playerName)

	if playerName == "" {
		return nil, errors.NewValidationError("player_name", "cannot be empty")
	}

	session, err := s.sessionRepo.Create(ctx, playerName)
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("game session created: id=%d, player_name=%s", session.ID, session.PlayerName)
	return session, nil
}

func (s *gameService) EndSession(ctx context.Context, sessionID int64) (*models.GameSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("ending game session: session_id=%d", sessionID)

	// Ending an already-ended session overwrites the end time.
	session, err := s.sessionRepo.SetEnded(ctx, sessionID, time.Now())
	if err != nil {
		log.Error("failed to end session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("game session", sessionID)
	}

	log.Info("game session ended: id=%d, total_score=%d", session.ID, session.TotalScore)
	return session, nil
}

func (s *gameService) SubmitAnswer(ctx context.Context, sessionID, questionID int64, selectedAnswer string) (*models.AnswerResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: session_id=%d, question_id=%d, selected=%s", sessionID, questionID, selectedAnswer)

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("game session", sessionID)
	}
	if session.EndedAt != nil {
		return nil, errors.NewConflictError("game session has already ended")
	}

	question, err := s.questionRepo.Get(ctx, questionID)
	if err != nil {
		log.Error("failed to get question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if question == nil {
		return nil, errors.NewNotFoundError("question", questionID)
	}

	answered, err := s.answerRepo.Exists(ctx, sessionID, questionID)
	if err != nil {
		log.Error("failed to check existing answer: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if answered {
		return nil, errors.NewConflictError("question has already been answered in this session")
	}

	isCorrect := selectedAnswer == question.CorrectAnswer
	points := 0
	if isCorrect {
		points = PointsPerCorrectAnswer
	}

	newScore, err := s.answerRepo.Record(ctx, models.QuizAnswer{
		SessionID:      sessionID,
		QuestionID:     questionID,
		SelectedAnswer: selectedAnswer,
		IsCorrect:      isCorrect,
		PointsAwarded:  points,
	})
	if err != nil {
		// A concurrent submission can slip past the Exists check; the unique
		// constraint turns it into the same conflict.
		if stderrors.Is(err, repository.ErrDuplicateAnswer) {
			return nil, errors.NewConflictError("question has already been answered in this session")
		}
		log.Error("failed to record answer: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Hint is only revealed on a wrong answer.
	var hint *string
	if !isCorrect {
		hint = question.Hint
	}

	log.Info("answer submitted: session_id=%d, question_id=%d, correct=%t, new_score=%d",
		sessionID, questionID, isCorrect, newScore)

	return &models.AnswerResult{
		IsCorrect:     isCorrect,
		PointsAwarded: points,
		CorrectAnswer: question.CorrectAnswer,
		Hint:          hint,
		CurrentScore:  newScore,
	}, nil
}

func (s *gameService) GetStats(ctx context.Context, sessionID int64) (*models.GameStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting game stats: session_id=%d", sessionID)

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("game session", sessionID)
	}

	accuracy := 0.0
	if session.QuestionsAnswered > 0 {
		accuracy = float64(session.CorrectAnswers) / float64(session.QuestionsAnswered) * 100
		accuracy = math.Round(accuracy*100) / 100
	}

	return &models.GameStats{
		TotalScore:         session.TotalScore,
		QuestionsAnswered:  session.QuestionsAnswered,
		CorrectAnswers:     session.CorrectAnswers,
		AccuracyPercentage: accuracy,
	}, nil
}

func (s *gameService) GetLeaderboard(ctx context.Context, limit int) ([]models.GameSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting leaderboard: limit=%d", limit)

	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	sessions, err := s.sessionRepo.Leaderboard(ctx, limit)
	if err != nil {
		log.Error("failed to get leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return sessions, nil
}
