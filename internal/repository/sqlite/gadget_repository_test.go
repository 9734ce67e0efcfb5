package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/gadgetquiz/internal/repository"
	"github.com/vytor/gadgetquiz/internal/repository/sqlite"
	"github.com/vytor/gadgetquiz/internal/testutil"
)

type GadgetRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.GadgetRepository
}

func (s *GadgetRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewGadgetRepository(s.db)
}

func (s *GadgetRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *GadgetRepositorySuite) TestList_Empty() {
	ctx := context.Background()

	gadgets, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Assert().Empty(gadgets)
}

func (s *GadgetRepositorySuite) TestList_InsertionOrder() {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `
INSERT INTO gadgets (name, description, image_url) VALUES
    ('Time Machine', 'Travels through time', NULL),
    ('Small Light', 'Shrinks things', 'http://example.com/small-light.png')
`)
	s.Require().NoError(err)

	gadgets, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(gadgets, 2)
	s.Assert().Equal("Time Machine", gadgets[0].Name)
	s.Assert().Nil(gadgets[0].ImageURL)
	s.Assert().Equal("Small Light", gadgets[1].Name)
	s.Require().NotNil(gadgets[1].ImageURL)
	s.Assert().Equal("http://example.com/small-light.png", *gadgets[1].ImageURL)
}

func (s *GadgetRepositorySuite) TestGet() {
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO gadgets (name, description) VALUES ('Memory Bread', 'Imprints pages')`)
	s.Require().NoError(err)

	var id int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM gadgets WHERE name = 'Memory Bread'`).Scan(&id)
	s.Require().NoError(err)

	g, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(g)
	s.Assert().Equal("Memory Bread", g.Name)

	missing, err := s.repo.Get(ctx, id+1)
	s.Require().NoError(err)
	s.Assert().Nil(missing)
}

func TestGadgetRepositorySuite(t *testing.T) {
	suite.Run(t, new(GadgetRepositorySuite))
}
