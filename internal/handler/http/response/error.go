package response

import (
	"errors"
	"net/http"

	"github.com/kentzie123/LJA-System-Server/internal/domain/employee"
	"github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayRunNotFound):
		NotFound(w, "Pay run not found")
	case errors.Is(err, payroll.ErrPayRunAlreadyCompleted):
		Conflict(w, "Pay run already completed")
	case errors.Is(err, payroll.ErrCannotDeleteCompleted):
		Conflict(w, "Completed pay runs cannot be deleted")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
