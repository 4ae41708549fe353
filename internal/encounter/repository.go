package encounter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	query := `SELECT id, disease, narrative, history, attempts, completed, custom, created_at, updated_at
	          FROM encounters WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	var s Snapshot
	var historyJSON []byte

	err := row.Scan(
		&s.ID,
		&s.Case.Disease,
		&s.Case.Narrative,
		&historyJSON,
		&s.Case.AttemptsRemaining,
		&s.Case.Completed,
		&s.Case.Custom,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("encounter not found")
		}
		return nil, err
	}

	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &s.Case.History); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history: %w", err)
		}
	}

	return &s, nil
}

func (r *postgresRepo) Save(ctx context.Context, s *Snapshot) error {
	historyJSON, err := json.Marshal(s.Case.History)
	if err != nil {
		return err
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	s.UpdatedAt = time.Now()

	query := `
		INSERT INTO encounters (id, disease, narrative, history, attempts, completed, custom, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			history = $4,
			attempts = $5,
			completed = $6,
			updated_at = $9
	`
	_, err = r.db.ExecContext(ctx, query,
		s.ID, s.Case.Disease, s.Case.Narrative, historyJSON,
		s.Case.AttemptsRemaining, s.Case.Completed, s.Case.Custom,
		s.CreatedAt, s.UpdatedAt)
	return err
}
