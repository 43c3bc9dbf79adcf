package postgresql

import (
	"context"
	"fmt"

	"github.com/kentzie123/LJA-System-Server/internal/domain/deduction"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.Repository {
	return &deductionRepository{db: db}
}

func (r *deductionRepository) ListActiveForUser(ctx context.Context, userID string) ([]deduction.ApplicablePlan, error) {
	q := GetQuerier(ctx, r.db)

	// Paid amount is derived from the ledger so it can never drift from the
	// entries that produced it.
	query := `
		SELECT dp.id, dp.name, dp.deduction_type, dp.amount, dp.is_global,
			   ds.id IS NOT NULL AS subscribed,
			   ds.total_loan_amount,
			   COALESCE((
				   SELECT SUM(dl.amount_paid)
				   FROM deduction_ledger dl
				   WHERE dl.deduction_plan_id = dp.id AND dl.user_id = $1
			   ), 0) AS amount_paid
		FROM deduction_plans dp
		LEFT JOIN deduction_subscribers ds
		  ON ds.deduction_plan_id = dp.id AND ds.user_id = $1
		WHERE dp.status = $2
		  AND (dp.is_global = TRUE OR ds.id IS NOT NULL)
		ORDER BY dp.name
	`

	rows, err := q.Query(ctx, query, userID, deduction.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction plans: %w", err)
	}
	defer rows.Close()

	var plans []deduction.ApplicablePlan
	for rows.Next() {
		var p deduction.ApplicablePlan
		err := rows.Scan(
			&p.PlanID, &p.Name, &p.DeductionType, &p.Amount, &p.IsGlobal,
			&p.Subscribed, &p.TotalLoanAmount, &p.AmountPaid,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction plan: %w", err)
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}

func (r *deductionRepository) AppendLedgerEntries(ctx context.Context, entries []deduction.LedgerEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_ledger (deduction_plan_id, user_id, amount_paid, pay_run_id)
		VALUES ($1, $2, $3, $4)
	`

	for _, e := range entries {
		if _, err := q.Exec(ctx, query, e.PlanID, e.UserID, e.AmountPaid, e.PayRunID); err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}
	}

	return nil
}
