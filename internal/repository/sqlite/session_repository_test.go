package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/gadgetquiz/internal/repository"
	"github.com/vytor/gadgetquiz/internal/repository/sqlite"
	"github.com/vytor/gadgetquiz/internal/testutil"
)

type SessionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.SessionRepository
}

func (s *SessionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSessionRepository(s.db)
}

func (s *SessionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionRepositorySuite) TestCreate() {
	ctx := context.Background()

	session, err := s.repo.Create(ctx, "alice")
	s.Require().NoError(err)
	s.Assert().Greater(session.ID, int64(0))
	s.Assert().Equal("alice", session.PlayerName)
	s.Assert().Equal(0, session.TotalScore)
	s.Assert().Equal(0, session.QuestionsAnswered)
	s.Assert().Equal(0, session.CorrectAnswers)
	s.Assert().Nil(session.EndedAt)
	s.Assert().False(session.StartedAt.IsZero())
}

func (s *SessionRepositorySuite) TestGet_NotFound() {
	ctx := context.Background()

	session, err := s.repo.Get(ctx, 999)
	s.Require().NoError(err)
	s.Assert().Nil(session)
}

func (s *SessionRepositorySuite) TestSetEnded() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, "bob")
	s.Require().NoError(err)

	endedAt := time.Now()
	ended, err := s.repo.SetEnded(ctx, created.ID, endedAt)
	s.Require().NoError(err)
	s.Require().NotNil(ended.EndedAt)
	s.Assert().WithinDuration(endedAt, *ended.EndedAt, time.Second)

	// Ending again overwrites the end time.
	later := endedAt.Add(5 * time.Minute)
	ended, err = s.repo.SetEnded(ctx, created.ID, later)
	s.Require().NoError(err)
	s.Require().NotNil(ended.EndedAt)
	s.Assert().WithinDuration(later, *ended.EndedAt, time.Second)
}

func (s *SessionRepositorySuite) TestSetEnded_NotFound() {
	ctx := context.Background()

	session, err := s.repo.SetEnded(ctx, 999, time.Now())
	s.Require().NoError(err)
	s.Assert().Nil(session)
}

func (s *SessionRepositorySuite) TestLeaderboard_ExcludesActiveSessions() {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `
INSERT INTO game_sessions (player_name, total_score, ended_at) VALUES
    ('finished-low', 10, '2024-01-01 10:00:00'),
    ('finished-high', 50, '2024-01-01 11:00:00')
`)
	s.Require().NoError(err)

	// Active session with a huge score must never appear.
	_, err = s.db.ExecContext(ctx, `
INSERT INTO game_sessions (player_name, total_score) VALUES ('active-high', 1000)
`)
	s.Require().NoError(err)

	sessions, err := s.repo.Leaderboard(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Assert().Equal("finished-high", sessions[0].PlayerName)
	s.Assert().Equal("finished-low", sessions[1].PlayerName)
}

func (s *SessionRepositorySuite) TestLeaderboard_TieBreaksByEarlierEnd() {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `
INSERT INTO game_sessions (player_name, total_score, ended_at) VALUES
    ('late', 30, '2024-01-01 12:00:00'),
    ('early', 30, '2024-01-01 09:00:00')
`)
	s.Require().NoError(err)

	sessions, err := s.repo.Leaderboard(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Assert().Equal("early", sessions[0].PlayerName)
	s.Assert().Equal("late", sessions[1].PlayerName)
}

func (s *SessionRepositorySuite) TestLeaderboard_RespectsLimit() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.db.ExecContext(ctx, `
INSERT INTO game_sessions (player_name, total_score, ended_at) VALUES ('p', ?, CURRENT_TIMESTAMP)
`, i*10)
		s.Require().NoError(err)
	}

	sessions, err := s.repo.Leaderboard(ctx, 3)
	s.Require().NoError(err)
	s.Assert().Len(sessions, 3)
	s.Assert().Equal(40, sessions[0].TotalScore)
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositorySuite))
}
