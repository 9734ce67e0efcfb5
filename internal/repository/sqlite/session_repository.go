package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, playerName string) (*models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("creating session: player_name=%s", playerName)

	var s models.GameSession
	err := r.db.QueryRowContext(ctx, `
INSERT INTO game_sessions (player_name)
VALUES (?)
RETURNING id, player_name, total_score, questions_answered, correct_answers, started_at, ended_at
`, playerName).Scan(&s.ID, &s.PlayerName, &s.TotalScore, &s.QuestionsAnswered, &s.CorrectAnswers, &s.StartedAt, &s.EndedAt)
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, err
	}
	log.Debug("session created: id=%d", s.ID)
	return &s, nil
}

func (r *sessionRepository) Get(ctx context.Context, id int64) (*models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("getting session: id=%d", id)

	var s models.GameSession
	err := r.db.QueryRowContext(ctx, `
SELECT id, player_name, total_score, questions_answered, correct_answers, started_at, ended_at
FROM game_sessions
WHERE id = ?
`, id).Scan(&s.ID, &s.PlayerName, &s.TotalScore, &s.QuestionsAnswered, &s.CorrectAnswers, &s.StartedAt, &s.EndedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("session not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return &s, nil
}

// SetEnded stamps the session's end time. Calling it on an already-ended
// session overwrites the previous end time.
func (r *sessionRepository) SetEnded(ctx context.Context, id int64, endedAt time.Time) (*models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("ending session: id=%d", id)

	var s models.GameSession
	err := r.db.QueryRowContext(ctx, `
UPDATE game_sessions
SET ended_at = ?
WHERE id = ?
RETURNING id, player_name, total_score, questions_answered, correct_answers, started_at, ended_at
`, endedAt, id).Scan(&s.ID, &s.PlayerName, &s.TotalScore, &s.QuestionsAnswered, &s.CorrectAnswers, &s.StartedAt, &s.EndedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("session not found for ending: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to end session: %v", err)
		return nil, err
	}
	log.Debug("session ended: id=%d, total_score=%d", s.ID, s.TotalScore)
	return &s, nil
}

// Leaderboard returns finished sessions ordered by score. Ties order by
// earlier end time, then by id, so the ranking is deterministic.
func (r *sessionRepository) Leaderboard(ctx context.Context, limit int) ([]models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("fetching leaderboard: limit=%d", limit)

	query := sqlBuilder.Select(
		"id", "player_name", "total_score", "questions_answered", "correct_answers", "started_at", "ended_at",
	).
		From("game_sessions").
		Where("ended_at IS NOT NULL").
		OrderBy("total_score DESC", "ended_at ASC", "id ASC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.GameSession
	for rows.Next() {
		var s models.GameSession
		if err := rows.Scan(&s.ID, &s.PlayerName, &s.TotalScore, &s.QuestionsAnswered, &s.CorrectAnswers, &s.StartedAt, &s.EndedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}

	log.Debug("leaderboard has %d entries", len(sessions))
	return sessions, rows.Err()
}
