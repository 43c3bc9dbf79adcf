package allowance

import "context"

type Repository interface {
	// ListActiveByUser returns the allowances that currently apply to the
	// user: global active types plus active per-employee assignments. Each
	// type appears at most once; an assignment wins over the global row.
	ListActiveByUser(ctx context.Context, userID string) ([]Subscription, error)
}
