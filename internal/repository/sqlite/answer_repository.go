package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/repository"
)

type answerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new AnswerRepository implementation
func NewAnswerRepository(db *sql.DB) repository.AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Exists(ctx context.Context, sessionID, questionID int64) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("answer_repo")
	log.Debug("checking for existing answer: session_id=%d, question_id=%d", sessionID, questionID)

	var id int64
	err := r.db.QueryRowContext(ctx, `
SELECT id FROM quiz_answers
WHERE session_id = ? AND question_id = ?
`, sessionID, questionID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Error("failed to check existing answer: %v", err)
		return false, err
	}
	return true, nil
}

// Record inserts the answer row and bumps the session counters in one
// transaction, so a partial write is never observable. The unique constraint
// on (session_id, question_id) turns a concurrent double submission into
// repository.ErrDuplicateAnswer.
func (r *answerRepository) Record(ctx context.Context, a models.QuizAnswer) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("answer_repo")
	log.Debug("recording answer: session_id=%d, question_id=%d, selected=%s, correct=%t",
		a.SessionID, a.QuestionID, a.SelectedAnswer, a.IsCorrect)

	correctInc := 0
	if a.IsCorrect {
		correctInc = 1
	}

	var newScore int
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO quiz_answers (session_id, question_id, selected_answer, is_correct, points_awarded)
VALUES (?, ?, ?, ?, ?)
`, a.SessionID, a.QuestionID, a.SelectedAnswer, a.IsCorrect, a.PointsAwarded)
		if err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
				return repository.ErrDuplicateAnswer
			}
			log.Error("failed to insert answer: %v", err)
			return err
		}

		if _, err := tx.ExecContext(ctx, `
UPDATE game_sessions
SET total_score = total_score + ?,
    questions_answered = questions_answered + 1,
    correct_answers = correct_answers + ?
WHERE id = ?
`, a.PointsAwarded, correctInc, a.SessionID); err != nil {
			log.Error("failed to update session counters: %v", err)
			return err
		}

		if err := tx.QueryRowContext(ctx, `
SELECT total_score FROM game_sessions WHERE id = ?
`, a.SessionID).Scan(&newScore); err != nil {
			log.Error("failed to read updated score: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Debug("answer recorded: session_id=%d, new_score=%d", a.SessionID, newScore)
	return newScore, nil
}
