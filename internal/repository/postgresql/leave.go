package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kentzie123/LJA-System-Server/internal/domain/leave"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) ListApprovedPaidOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type_id, lt.name, lr.start_date, lr.end_date
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.user_id = $1
		  AND lr.status = $2
		  AND lt.is_paid = TRUE
		  AND lr.start_date <= $4
		  AND lr.end_date >= $3
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, userID, leave.StatusApproved, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(&req.ID, &req.UserID, &req.TypeID, &req.TypeName, &req.StartDate, &req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
