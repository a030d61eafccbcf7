package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly/internal/models/response_models"
	"taskly/internal/services"
	"taskly/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingAIClient struct {
	err error
}

func (f *failingAIClient) GenerateTasks(_ context.Context, _ string) (*response_models.GeneratedTaskPlan, error) {
	return nil, f.err
}

func (f *failingAIClient) SuggestCategory(_ context.Context, _ string, _ []string) (*response_models.CategorySuggestion, error) {
	return nil, f.err
}

func (f *failingAIClient) GetEmbedding(_ context.Context, _ string) (pgvector.Vector, error) {
	return pgvector.Vector{}, f.err
}

func newAIRouter(client utils.TaskAIClientInterface) *gin.Engine {
	ctl := NewAIController(services.NewAIService(client, nil))
	r := gin.New()
	r.POST("/api/create-tasks", ctl.CreateTasksHandler)
	r.POST("/api/suggest-category", ctl.SuggestCategoryHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateTasksMissingPrompt(t *testing.T) {
	r := newAIRouter(utils.NewMockTaskAIClient())

	for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":"   "}`, `not json`} {
		w := postJSON(t, r, "/api/create-tasks", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestCreateTasksMockSuccess(t *testing.T) {
	r := newAIRouter(utils.NewMockTaskAIClient())

	w := postJSON(t, r, "/api/create-tasks", `{"prompt":"plan a birthday party"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "success", resp.Status)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var plan response_models.GeneratedTaskPlan
	require.NoError(t, json.Unmarshal(raw, &plan))

	assert.Equal(t, "General", plan.Category)
	require.Len(t, plan.Tasks, 3)
	assert.Contains(t, plan.Tasks[0].Description, "plan a birthday party")
}

func TestCreateTasksErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"quota exhausted", utils.ErrAIQuotaExceeded, http.StatusTooManyRequests},
		{"bad credentials", utils.ErrAIAuthFailed, http.StatusUnauthorized},
		{"provider unreachable", utils.ErrAIUnavailable, http.StatusServiceUnavailable},
		{"anything else", utils.ErrAIUnexpected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAIRouter(&failingAIClient{err: tt.err})
			w := postJSON(t, r, "/api/create-tasks", `{"prompt":"write tests"}`, nil)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestSuggestCategoryShortDescription(t *testing.T) {
	r := newAIRouter(utils.NewMockTaskAIClient())

	w := postJSON(t, r, "/api/suggest-category", `{"description":"short"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestCategorySuccess(t *testing.T) {
	r := newAIRouter(utils.NewMockTaskAIClient())

	w := postJSON(t, r, "/api/suggest-category",
		`{"description":"fix the leaking faucet in the kitchen","existingCategories":["Home","Work"]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var suggestion response_models.CategorySuggestion
	require.NoError(t, json.Unmarshal(raw, &suggestion))
	assert.NotEmpty(t, suggestion.Category)
}
