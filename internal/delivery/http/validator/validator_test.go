package validator

import (
	"testing"

	domainerrors "venuealert/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required"`
	Latitude float64 `json:"latitude" validate:"min=-90,max=90"`
}

func TestValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "Cafe", Latitude: 40.7}))

	err := v.Validate(&sample{Latitude: 120})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "name failed required")
	assert.Contains(t, appErr.Details(), "latitude failed max")
}
