package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("with details copies", func(t *testing.T) {
		detailed := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "term"})

		assert.Equal(t, "term", detailed.Details["field"])
		assert.Empty(t, ErrInvalidRequest.Details)
		assert.Equal(t, http.StatusBadRequest, detailed.StatusCode)
	})

	t.Run("is matches by code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", ErrSessionNotFound.WithMessage("session abc expired"))

		assert.True(t, stderrors.Is(err, ErrSessionNotFound))
		assert.False(t, stderrors.Is(err, ErrInvalidCategory))
	})

	t.Run("error string", func(t *testing.T) {
		assert.Equal(t, "INVALID_CATEGORY: Unknown event category", ErrInvalidCategory.Error())
	})
}
