package payroll

import "errors"

var (
	ErrPayRunNotFound         = errors.New("pay run not found")
	ErrPayRunAlreadyCompleted = errors.New("pay run already completed")
	ErrCannotDeleteCompleted  = errors.New("completed pay runs cannot be deleted")
)
