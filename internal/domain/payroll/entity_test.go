package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNameOrNil(t *testing.T) {
	unnamed := &PayRun{}
	assert.Nil(t, unnamed.RunNameOrNil(), "unnamed runs store NULL, not empty string")

	named := &PayRun{RunName: "January 1-15"}
	got := named.RunNameOrNil()
	require.NotNil(t, got)
	assert.Equal(t, "January 1-15", *got)
}
