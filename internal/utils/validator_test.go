package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	type payload struct {
		DisplayName string `json:"display_name" validate:"required"`
		Age         int    `json:"age" validate:"gte=0"`
	}

	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(&payload{DisplayName: "ok"}))

	err := v.ValidateStruct(&payload{Age: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display_name")
	assert.Contains(t, err.Error(), "age")
	assert.NotContains(t, err.Error(), "DisplayName")
}
