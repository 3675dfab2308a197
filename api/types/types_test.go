package types

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/services/sessions"
	apperrors "github.com/cutroom/timeline-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseUintParam(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := ParseUintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "not-a-number"}}

	_, ok = ParseUintParam(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"scene not found", scenes.ErrSceneNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", scenes.ErrSegmentNotFound), http.StatusNotFound},
		{"validation", scenes.ErrInvalidInput, http.StatusBadRequest},
		{"no active drag", sessions.ErrNoActiveDrag, http.StatusBadRequest},
		{"session closed", sessions.ErrSessionClosed, http.StatusConflict},
		{"session missing", sessions.ErrSessionNotFound, http.StatusNotFound},
		{"app error keeps status", apperrors.New(apperrors.ErrCodeMediaUnavailable, "gone"), http.StatusUnprocessableEntity},
		{"unknown", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendServiceError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
