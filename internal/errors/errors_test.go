package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

func respond(t *testing.T, err error) (int, APIError) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithServiceError(c, err)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondWithServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"name": "is required"}}, http.StatusBadRequest, ErrCodeInvalidInput, "Validation failed"},
		{"not found", &services.NotFoundError{Entity: "task", ID: 4}, http.StatusNotFound, ErrCodeNotFound, "task 4 not found"},
		{"batch", fmt.Errorf("failed to create task: %w", &recordstore.BatchError{Failures: []recordstore.Result{{Message: "title_c is required"}}}), http.StatusUnprocessableEntity, ErrCodeRecordRejected, "title_c is required"},
		{"transport", fmt.Errorf("failed to list project: %w", &recordstore.TransportError{Message: "Invalid public key"}), http.StatusBadGateway, ErrCodeUpstreamError, "Invalid public key"},
		{"ai missing", services.ErrAIServiceNotConfigured, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "AI service is not configured"},
		{"ai empty", services.ErrAINoTasksGenerated, http.StatusUnprocessableEntity, ErrCodeOperationFailed, "AI did not generate any tasks"},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respond(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestRespondWithServiceError_ValidationDetails(t *testing.T) {
	_, body := respond(t, &services.ValidationError{Fields: map[string]string{"email": "must be a valid email address"}})
	assert.Equal(t, map[string]interface{}{"email": "must be a valid email address"}, body.Details)
}
