package repository

import (
	"context"
	"time"

	"github.com/vytor/gadgetquiz/internal/models"
)

// GadgetRepository handles gadget reference data access
type GadgetRepository interface {
	List(ctx context.Context) ([]models.Gadget, error)
	Get(ctx context.Context, id int64) (*models.Gadget, error)
}

// QuestionRepository handles quiz question data access
type QuestionRepository interface {
	Get(ctx context.Context, id int64) (*models.QuizQuestion, error)
	RandomUnanswered(ctx context.Context, sessionID int64) (*models.QuizQuestion, *models.Gadget, error)
}

// SessionRepository handles game session data access
type SessionRepository interface {
	Create(ctx context.Context, playerName string) (*models.GameSession, error)
	Get(ctx context.Context, id int64) (*models.GameSession, error)
	SetEnded(ctx context.Context, id int64, endedAt time.Time) (*models.GameSession, error)
	Leaderboard(ctx context.Context, limit int) ([]models.GameSession, error)
}

// AnswerRepository handles quiz answer data access
type AnswerRepository interface {
	Exists(ctx context.Context, sessionID, questionID int64) (bool, error)
	// Record inserts the answer and updates the session counters in a single
	// transaction. It returns the session's new total score.
	Record(ctx context.Context, answer models.QuizAnswer) (int, error)
}
