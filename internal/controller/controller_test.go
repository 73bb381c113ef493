package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockmate/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "model output",
			err:      fmt.Errorf("wrapped: %w", &service.ModelOutputError{Raw: "oops", Reason: "bad"}),
			wantCode: http.StatusBadGateway,
			wantBody: `{"success":false,"rawContent":"oops","error":"Failed to parse AI response"}`,
		},
		{"interview not found", service.ErrInterviewNotFound, http.StatusNotFound, `{"error":"Interview not found"}`},
		{"no feedback", service.ErrNoFeedback, http.StatusNotFound, `{"message":"No feedback found for this interview"}`},
		{"deadline", fmt.Errorf("gemini stream: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, `{"error":"AI service timed out"}`},
		{"other", errors.New("connection refused"), http.StatusInternalServerError, `{"error":"fallback"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(ctx, tt.err, "fallback")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}
