package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registration struct {
	Name     string `validate:"required"`
	Age      int    `validate:"gte=0"`
	Password string `validate:"required,min=6"`
}

func TestValidatePassesValidStruct(t *testing.T) {
	v := New()
	err := v.Validate(registration{Name: "Asha", Age: 30, Password: "secure_pass"})
	assert.NoError(t, err)
}

func TestFieldErrorsMessages(t *testing.T) {
	v := New()
	err := v.Validate(registration{Age: -1, Password: "short"})
	require.Error(t, err)

	fieldErrors := v.FieldErrors(err)
	assert.Equal(t, "is required", fieldErrors["Name"])
	assert.Equal(t, "must be greater than or equal to 0", fieldErrors["Age"])
	assert.Equal(t, "must be at least 6 characters", fieldErrors["Password"])
}

func TestFieldErrorsStringIsDeterministic(t *testing.T) {
	v := New()
	err := v.Validate(registration{})
	require.Error(t, err)

	first := v.FieldErrors(err).String()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, v.FieldErrors(err).String())
	}
	assert.Contains(t, first, "Name is required")
}
