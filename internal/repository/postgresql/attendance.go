package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kentzie123/LJA-System-Server/internal/domain/attendance"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListVerifiedInRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, time_in, time_out, worked_hours, status_in, status_out
		FROM attendance
		WHERE user_id = $1
		  AND date BETWEEN $2 AND $3
		  AND status_in = $4 AND status_out = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, start, end, attendance.StatusVerified)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		var e attendance.Entry
		err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.TimeIn, &e.TimeOut, &e.WorkedHours, &e.StatusIn, &e.StatusOut)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
