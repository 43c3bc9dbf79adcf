package employee

import "context"

type Repository interface {
	// ListActive returns all active users ordered by id, regardless of role.
	// Role-based eligibility is applied by the caller.
	ListActive(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
}
