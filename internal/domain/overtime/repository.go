package overtime

import (
	"context"
	"time"
)

type Repository interface {
	// ListApprovedInRange returns approved requests for the user whose date
	// falls inside [start, end], joined with their type multiplier.
	ListApprovedInRange(ctx context.Context, userID string, start, end time.Time) ([]Request, error)
}
