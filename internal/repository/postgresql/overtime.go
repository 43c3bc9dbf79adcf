package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kentzie123/LJA-System-Server/internal/domain/overtime"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepository{db: db}
}

func (r *overtimeRepository) ListApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ot.id, ot.user_id, ot.ot_type_id, t.name, t.rate, ot.ot_date, ot.total_hours
		FROM overtime_requests ot
		JOIN overtime_types t ON t.id = ot.ot_type_id
		WHERE ot.user_id = $1
		  AND ot.status = $2
		  AND ot.ot_date BETWEEN $3 AND $4
		ORDER BY ot.ot_date
	`

	rows, err := q.Query(ctx, query, userID, overtime.StatusApproved, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		var req overtime.Request
		err := rows.Scan(&req.ID, &req.UserID, &req.TypeID, &req.TypeName, &req.Multiplier, &req.Date, &req.Hours)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
