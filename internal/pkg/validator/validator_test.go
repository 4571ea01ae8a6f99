package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryRequest struct {
	Category string `json:"category" validate:"required,category"`
	Limit    int    `json:"limit" validate:"min=0,max=100"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(categoryRequest{Category: "road-closures"}))

	err := Validate(categoryRequest{Category: "earthquakes", Limit: 500})
	require.Error(t, err)

	details := Details(err)
	assert.Equal(t, "category", details["Category"])
	assert.Equal(t, "max", details["Limit"])
}

func TestDetails_NonValidationError(t *testing.T) {
	details := Details(assert.AnError)
	assert.Contains(t, details, "error")
}
