package models

import "time"

// Gadget is reference data about a fictional gadget. Rows are created by the
// seed data and are read-only to the application.
type Gadget struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuizQuestion is a multiple-choice question about a gadget. The correct
// answer is one of the option keys A, B, C or D.
type QuizQuestion struct {
	ID            int64     `json:"id"`
	GadgetID      int64     `json:"gadget_id"`
	QuestionText  string    `json:"question_text"`
	CorrectAnswer string    `json:"correct_answer"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	Hint          *string   `json:"hint"`
	CreatedAt     time.Time `json:"created_at"`
}

// GameSession tracks one player's run through the quiz. EndedAt stays nil
// while the session is active and, once set, is never cleared.
type GameSession struct {
	ID                int64      `json:"id"`
	PlayerName        string     `json:"player_name"`
	TotalScore        int        `json:"total_score"`
	QuestionsAnswered int        `json:"questions_answered"`
	CorrectAnswers    int        `json:"correct_answers"`
	StartedAt         time.Time  `json:"started_at"`
	EndedAt           *time.Time `json:"ended_at"`
}

// QuizAnswer records a single answer within a session. At most one row may
// exist per (session_id, question_id) pair.
type QuizAnswer struct {
	ID             int64     `json:"id"`
	SessionID      int64     `json:"session_id"`
	QuestionID     int64     `json:"question_id"`
	SelectedAnswer string    `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	PointsAwarded  int       `json:"points_awarded"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// QuestionOption is one of the four answer choices, tagged with its key.
type QuestionOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QuizQuestionWithOptions is the display form of a question: options as a
// keyed list and the owning gadget joined in, without the correct answer.
type QuizQuestionWithOptions struct {
	ID           int64            `json:"id"`
	GadgetID     int64            `json:"gadget_id"`
	QuestionText string           `json:"question_text"`
	Options      []QuestionOption `json:"options"`
	Gadget       *Gadget          `json:"gadget,omitempty"`
}

// AnswerResult is returned by SubmitAnswer. The correct answer is always
// revealed; the hint is only populated when the answer was wrong.
type AnswerResult struct {
	IsCorrect     bool    `json:"is_correct"`
	PointsAwarded int     `json:"points_awarded"`
	CorrectAnswer string  `json:"correct_answer"`
	Hint          *string `json:"hint"`
	CurrentScore  int     `json:"current_score"`
}

// GameStats summarizes a session's counters with an accuracy percentage
// rounded to two decimal places.
type GameStats struct {
	TotalScore         int     `json:"total_score"`
	QuestionsAnswered  int     `json:"questions_answered"`
	CorrectAnswers     int     `json:"correct_answers"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
}
