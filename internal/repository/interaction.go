package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odumodamilola/careernest-sub000/internal/matching"
)

// InteractionRepository persists per-user interaction history. The match
// engine keeps its own in-memory copy; this table survives restarts and is
// replayed into the engine at startup.
type InteractionRepository struct {
	pool *pgxpool.Pool
}

func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

// ReplaceInteractions swaps the stored interaction list for a user.
func (r *InteractionRepository) ReplaceInteractions(ctx context.Context, userID string, interactions []matching.Interaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_interactions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear interactions: %w", err)
	}

	if len(interactions) > 0 {
		rows := make([][]interface{}, len(interactions))
		for i, in := range interactions {
			rows[i] = []interface{}{userID, in.TargetID, in.Type, in.Timestamp}
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"user_interactions"},
			[]string{"user_id", "target_id", "interaction_type", "occurred_at"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("failed to insert interactions: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit interactions: %w", err)
	}
	return nil
}

// ListAll returns every stored interaction grouped by user, for engine hydration.
func (r *InteractionRepository) ListAll(ctx context.Context) (map[string][]matching.Interaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, target_id, interaction_type, occurred_at
		FROM user_interactions
		ORDER BY user_id, occurred_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]matching.Interaction)
	for rows.Next() {
		var userID string
		var in matching.Interaction
		if err := rows.Scan(&userID, &in.TargetID, &in.Type, &in.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		result[userID] = append(result[userID], in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}
	return result, nil
}
