package postgresql

import (
	"context"
	"fmt"

	"github.com/kentzie123/LJA-System-Server/internal/domain/allowance"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
)

type allowanceRepository struct {
	db *database.DB
}

func NewAllowanceRepository(db *database.DB) allowance.Repository {
	return &allowanceRepository{db: db}
}

func (r *allowanceRepository) ListActiveByUser(ctx context.Context, userID string) ([]allowance.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	// Each type appears once. An active per-employee assignment wins over the
	// global row so its custom amount is honored.
	query := `
		SELECT at.id, at.name, at.amount, ea.custom_amount,
			   at.is_global, ea.id IS NOT NULL AS assigned
		FROM allowance_types at
		LEFT JOIN employee_allowances ea
		  ON ea.allowance_type_id = at.id AND ea.user_id = $1 AND ea.is_active = TRUE
		WHERE at.status = $2
		  AND (at.is_global = TRUE OR ea.id IS NOT NULL)
		ORDER BY at.name
	`

	rows, err := q.Query(ctx, query, userID, allowance.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	var subs []allowance.Subscription
	for rows.Next() {
		var s allowance.Subscription
		err := rows.Scan(&s.TypeID, &s.Name, &s.TypeAmount, &s.CustomAmount, &s.IsGlobal, &s.Assigned)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		subs = append(subs, s)
	}

	return subs, rows.Err()
}
