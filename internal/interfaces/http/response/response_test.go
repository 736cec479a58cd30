package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/interfaces/http/response"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Success(c, http.StatusCreated, gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestError_AppError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("User not found"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(domainerrors.CodeNotFound), body["code"])
	assert.Equal(t, "User not found", body["message"])
}

func TestError_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", domainerrors.Conflict("Email is already in use"))
	w := record(func(c *gin.Context) {
		response.Error(c, wrapped)
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestError_UnknownErrorIsInternal(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, errors.New("pq: connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}
