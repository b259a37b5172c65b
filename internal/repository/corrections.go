package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Correction is one user-confirmed (description, account) pair, stored so
// the next retraining run learns from it.
type Correction struct {
	ID          uuid.UUID
	Company     string
	Description string
	Account     string
	CreatedAt   time.Time
}

type CorrectionRepository interface {
	Add(ctx context.Context, company, description, account string) (*Correction, error)
	ListByCompany(ctx context.Context, company string) ([]Correction, error)
	CountByCompany(ctx context.Context, company string) (int, error)
}

type correctionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCorrectionRepository(db *sql.DB, logger *slog.Logger) CorrectionRepository {
	return &correctionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *correctionRepository) Add(ctx context.Context, company, description, account string) (*Correction, error) {
	c := &Correction{
		ID:          uuid.New(),
		Company:     company,
		Description: description,
		Account:     account,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO corrections (id, company, description, account, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID.String(), c.Company, c.Description, c.Account, c.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to add correction", "company", company, "error", err)
		return nil, err
	}
	return c, nil
}

func (r *correctionRepository) ListByCompany(ctx context.Context, company string) ([]Correction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, company, description, account, created_at FROM corrections WHERE company = ? ORDER BY created_at`,
		company,
	)
	if err != nil {
		r.logger.Error("failed to list corrections", "company", company, "error", err)
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Correction
	for rows.Next() {
		var c Correction
		var id string
		if err := rows.Scan(&id, &c.Company, &c.Description, &c.Account, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID, _ = uuid.Parse(id)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *correctionRepository) CountByCompany(ctx context.Context, company string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM corrections WHERE company = ?`, company,
	).Scan(&n)
	if err != nil {
		r.logger.Error("failed to count corrections", "company", company, "error", err)
		return 0, err
	}
	return n, nil
}
