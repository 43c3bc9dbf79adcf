package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 31, date.Day())

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("b7a9c6a4-31fd-4c9e-9e5a-0d8f1c2b3a4d"))
	assert.True(t, IsValidUUID("B7A9C6A4-31FD-4C9E-9E5A-0D8F1C2B3A4D"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date must not be before start_date"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "start_date is required", m["start_date"])
	assert.Contains(t, errs.Error(), "end_date")
}
