package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vytor/gadgetquiz/internal/errors"
	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/services"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way clients send them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Procedure input shapes, validated before any handler runs.

type createGameSessionInput struct {
	PlayerName string `json:"player_name" validate:"required,min=1"`
}

type endGameSessionInput struct {
	SessionID int64 `json:"session_id" validate:"required,gt=0"`
}

type randomQuestionInput struct {
	SessionID int64 `json:"sessionId" validate:"required,gt=0"`
}

type submitAnswerInput struct {
	SessionID      int64  `json:"session_id" validate:"required,gt=0"`
	QuestionID     int64  `json:"question_id" validate:"required,gt=0"`
	SelectedAnswer string `json:"selected_answer" validate:"required,oneof=A B C D"`
}

type gameStatsInput struct {
	SessionID int64 `json:"sessionId" validate:"required,gt=0"`
}

type leaderboardInput struct {
	Limit *int `json:"limit" validate:"omitempty,min=1,max=50"`
}

// handleRPC dispatches a named procedure. Unknown names are a 404.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	procedure := chi.URLParam(r, "procedure")

	switch procedure {
	case "healthcheck":
		s.handleHealthcheck(w, r)
	case "createGameSession":
		s.handleCreateGameSession(w, r)
	case "endGameSession":
		s.handleEndGameSession(w, r)
	case "getRandomQuestion":
		s.handleGetRandomQuestion(w, r)
	case "submitAnswer":
		s.handleSubmitAnswer(w, r)
	case "getGameStats":
		s.handleGetGameStats(w, r)
	case "getLeaderboard":
		s.handleGetLeaderboard(w, r)
	case "getAllGadgets":
		s.handleGetAllGadgets(w, r)
	default:
		handleError(w, r, errors.NewNotFoundError("procedure", procedure))
	}
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	respondResult(w, r, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCreateGameSession(w http.ResponseWriter, r *http.Request) {
	var input createGameSessionInput
	if err := decodeInput(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.GameService.CreateSession(r.Context(), input.PlayerName)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondResult(w, r, session)
}

func (s *Server) handleEndGameSession(w http.ResponseWriter, r *http.Request) {
	var input endGameSessionInput
	if err := decodeInput(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.GameService.EndSession(r.Context(), input.SessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondResult(w, r, session)
}

func (s *Server) handleGetRandomQuestion(w http.ResponseWriter, r *http.Request) {
	var input randomQuestionInput
	if err := decodeInput(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	question, err := s.QuizService.GetRandomQuestion(r.Context(), input.SessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	// question is nil when every question has been answered; the client
	// treats the null result as the end of the game.
	if question == nil {
		respondResult(w, r, nil)
		return
	}
	respondResult(w, r, question)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var input submitAnswerInput
	if err := decodeInput(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.GameService.SubmitAnswer(r.Context(), input.SessionID, input.QuestionID, input.SelectedAnswer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondResult(w, r, result)
}

func (s *Server) handleGetGameStats(w http.ResponseWriter, r *http.Request) {
	var input gameStatsInput
	if err := decodeInput(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.GameService.GetStats(r.Context(), input.SessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondResult(w, r, stats)
}

func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var input leaderboardInput
	if err := decodeInput(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	limit := services.DefaultLeaderboardLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	sessions, err := s.GameService.GetLeaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []models.GameSession{}
	}
	respondResult(w, r, sessions)
}

func (s *Server) handleGetAllGadgets(w http.ResponseWriter, r *http.Request) {
	gadgets, err := s.QuizService.ListGadgets(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if gadgets == nil {
		gadgets = []models.Gadget{}
	}
	respondResult(w, r, gadgets)
}

// decodeInput parses the JSON body into v and validates it. An empty body is
// allowed so procedures with only optional fields can be called bare.
func decodeInput(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.NewBadRequestError("malformed JSON input")
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.NewValidationError(fe.Field(), "failed on the '"+fe.Tag()+"' rule")
		}
		return errors.NewBadRequestError("invalid input")
	}
	return nil
}

func respondResult(w http.ResponseWriter, r *http.Request, data any) {
	log := logger.FromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"result": data}); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
