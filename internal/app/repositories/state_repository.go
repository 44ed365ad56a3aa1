package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/keremavci/studentapi/internal/app/models"
	"github.com/keremavci/studentapi/internal/pkg/dberrors"
	"github.com/keremavci/studentapi/internal/pkg/helpers"
)

// State error types
var (
	ErrStateAlreadyExists = errors.New("state with this name already exists")
)

// StateRepository handles database operations for the state lookup table
type StateRepository struct {
	db *pgxpool.Pool
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{
		db: db,
	}
}

// GetAll retrieves all states. No ordering is guaranteed.
func (r *StateRepository) GetAll(ctx context.Context) ([]*models.State, error) {
	rows, err := r.db.Query(ctx, `SELECT state_id, state_name FROM state_mast`)
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer rows.Close()

	var states []*models.State
	for rows.Next() {
		var (
			state models.State
			name  sql.NullString
		)
		if err := rows.Scan(&state.StateID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan state row: %w", err)
		}
		state.StateName = helpers.StringOrEmpty(name)
		states = append(states, &state)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return states, nil
}

// Create inserts a new state and returns its assigned id. Uniqueness is
// enforced by the store's constraint on state_name, so two concurrent
// callers inserting the same name cannot both succeed; the loser gets
// ErrStateAlreadyExists.
func (r *StateRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO state_mast (state_name) VALUES ($1) RETURNING state_id`,
		name,
	).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "state_mast_state_name_key") {
			return 0, ErrStateAlreadyExists
		}
		return 0, fmt.Errorf("failed to create state: %w", err)
	}

	return id, nil
}
