package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/datalens-ai/datalens/pkg/services"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError(t *testing.T) {
	t.Run("validation errors are 400", func(t *testing.T) {
		w := respond(services.NewValidationError("report_id", "required"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "report_id")
	})

	t.Run("not found is 404", func(t *testing.T) {
		w := respond(services.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("conflicts are 409", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, respond(services.ErrAlreadyExists).Code)
		assert.Equal(t, http.StatusConflict, respond(services.ErrTerminal).Code)
	})

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		w := respond(errors.Join(errors.New("get completion"), services.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown errors are 500 without leaking details", func(t *testing.T) {
		w := respond(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}
