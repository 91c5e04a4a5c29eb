package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"mercado_fetcher/internal/domain"
)

type RunStateStore struct {
	db *sqlx.DB
}

func NewRunStateStore(db *sqlx.DB) *RunStateStore {
	return &RunStateStore{db: db}
}

func (s *RunStateStore) Get(ctx context.Context, entity domain.Entity) (*domain.RunState, error) {
	var state domain.RunState
	query := `
		SELECT id, entity, last_run_at, last_page, total_extracted
		FROM extraction_state
		WHERE entity = $1`

	err := s.db.GetContext(ctx, &state, query, string(entity))
	if errors.Is(err, sql.ErrNoRows) {
		// Empty state for entities never extracted before.
		return &domain.RunState{
			Entity:    string(entity),
			LastRunAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, wrapDBError(err)
	}
	return &state, nil
}

func (s *RunStateStore) Update(ctx context.Context, state *domain.RunState) error {
	query := `
		INSERT INTO extraction_state (entity, last_run_at, last_page, total_extracted)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (entity) DO UPDATE SET
			last_run_at = EXCLUDED.last_run_at,
			last_page = EXCLUDED.last_page,
			total_extracted = EXCLUDED.total_extracted`

	_, err := s.db.ExecContext(ctx, query,
		state.Entity,
		state.LastRunAt,
		state.LastPage,
		state.TotalExtracted,
	)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}
