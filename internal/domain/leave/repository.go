package leave

import (
	"context"
	"time"
)

type Repository interface {
	// ListApprovedPaidOverlapping returns approved requests with a paid leave
	// type that overlap [start, end]. Requests may extend beyond the range;
	// the caller clips them.
	ListApprovedPaidOverlapping(ctx context.Context, userID string, start, end time.Time) ([]Request, error)
}
