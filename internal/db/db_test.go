package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/gadgetquiz/internal/db"
)

func TestOpenAppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")

	database, err := db.Open(path)
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"gadgets", "quiz_questions", "game_sessions", "quiz_answers"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")

	database, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	// Reopening must skip already-applied migrations.
	database, err = db.Open(path)
	require.NoError(t, err)
	defer database.Close()
}

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")

	database, err := db.Open(path)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, database.Seed(ctx))

	var gadgets, questions int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM gadgets`).Scan(&gadgets))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM quiz_questions`).Scan(&questions))
	assert.Greater(t, gadgets, 0)
	assert.Greater(t, questions, 0)

	// Seeding again must not duplicate reference data.
	require.NoError(t, database.Seed(ctx))

	var gadgetsAfter int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM gadgets`).Scan(&gadgetsAfter))
	assert.Equal(t, gadgets, gadgetsAfter)
}
