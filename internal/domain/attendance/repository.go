package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// ListVerifiedInRange returns entries for the user whose date falls inside
	// [start, end] and whose clock-in and clock-out are both verified.
	ListVerifiedInRange(ctx context.Context, userID string, start, end time.Time) ([]Entry, error)
}
