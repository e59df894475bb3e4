package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/ports/outbound"
)

// HouseholdRepository implements outbound.HouseholdRepository.
type HouseholdRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHouseholdRepository(db *pgxpool.Pool, logger *zap.Logger) outbound.HouseholdRepository {
	return &HouseholdRepository{db: db, logger: logger}
}

func (r *HouseholdRepository) IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM household_members
			WHERE household_id = $1 AND user_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, householdID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking household membership: %w", err)
	}
	return exists, nil
}
