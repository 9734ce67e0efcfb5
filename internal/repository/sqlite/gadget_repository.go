package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/gadgetquiz/internal/logger"
	"github.com/vytor/gadgetquiz/internal/models"
	"github.com/vytor/gadgetquiz/internal/repository"
)

type gadgetRepository struct {
	db *sql.DB
}

// NewGadgetRepository creates a new GadgetRepository implementation
func NewGadgetRepository(db *sql.DB) repository.GadgetRepository {
	return &gadgetRepository{db: db}
}

func (r *gadgetRepository) List(ctx context.Context) ([]models.Gadget, error) {
	log := logger.FromContext(ctx).WithPrefix("gadget_repo")
	log.Debug("listing gadgets")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, description, image_url, created_at
FROM gadgets
ORDER BY id ASC
`)
	if err != nil {
		log.Error("failed to list gadgets: %v", err)
		return nil, err
	}
	defer rows.Close()

	var gadgets []models.Gadget
	for rows.Next() {
		var g models.Gadget
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.CreatedAt); err != nil {
			log.Error("failed to scan gadget row: %v", err)
			return nil, err
		}
		gadgets = append(gadgets, g)
	}

	log.Debug("found %d gadgets", len(gadgets))
	return gadgets, rows.Err()
}

func (r *gadgetRepository) Get(ctx context.Context, id int64) (*models.Gadget, error) {
	log := logger.FromContext(ctx).WithPrefix("gadget_repo")
	log.Debug("getting gadget: id=%d", id)

	var g models.Gadget
	err := r.db.QueryRowContext(ctx, `
SELECT id, name, description, image_url, created_at
FROM gadgets
WHERE id = ?
`, id).Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("gadget not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get gadget: %v", err)
		return nil, err
	}
	return &g, nil
}
