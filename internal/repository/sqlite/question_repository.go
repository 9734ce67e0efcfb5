package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/repository"
)

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new QuestionRepository implementation
func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Get(ctx context.Context, id int64) (*models.QuizQuestion, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("getting question: id=%d", id)

	var q models.QuizQuestion
	err := r.db.QueryRowContext(ctx, `
SELECT id, gadget_id, question_text, correct_answer, option_a, option_b, option_c, option_d, hint, created_at
FROM quiz_questions
WHERE id = ?
`, id).Scan(&q.ID, &q.GadgetID, &q.QuestionText, &q.CorrectAnswer, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.Hint, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("question not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get question: %v", err)
		return nil, err
	}
	return &q, nil
}

// RandomUnanswered picks one question uniformly at random among those the
// session has not answered yet, with the owning gadget joined in. Both
// results are nil when every question has been answered or none exist.
func (r *questionRepository) RandomUnanswered(ctx context.Context, sessionID int64) (*models.QuizQuestion, *models.Gadget, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("picking random unanswered question: session_id=%d", sessionID)

	query := sqlBuilder.Select(
		"q.id", "q.gadget_id", "q.question_text", "q.correct_answer",
		"q.option_a", "q.option_b", "q.option_c", "q.option_d", "q.hint", "q.created_at",
		"g.id", "g.name", "g.description", "g.image_url", "g.created_at",
	).
		From("quiz_questions q").
		Join("gadgets g ON g.id = q.gadget_id").
		Where("q.id NOT IN (SELECT question_id FROM quiz_answers WHERE session_id = ?)", sessionID).
		OrderBy("RANDOM()").
		Limit(1)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, nil, err
	}

	var q models.QuizQuestion
	var g models.Gadget
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(
		&q.ID, &q.GadgetID, &q.QuestionText, &q.CorrectAnswer,
		&q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.Hint, &q.CreatedAt,
		&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no unanswered questions left: session_id=%d", sessionID)
		return nil, nil, nil
	}
	if err != nil {
		log.Error("failed to pick random question: %v", err)
		return nil, nil, err
	}
	log.Debug("picked question: id=%d, gadget_id=%d", q.ID, q.GadgetID)
	return &q, &g, nil
}
