package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craveboard/backend/internal/api"
)

type cannedGenerator struct {
	content string
	err     error
}

func (g *cannedGenerator) Generate(context.Context, string, string) (string, error) {
	return g.content, g.err
}

func newTestRouter(gen *cannedGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(api.NewRecipeHandler(gen, nil))
}

func TestPreflightRequest(t *testing.T) {
	r := newTestRouter(&cannedGenerator{})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodOptions, "/api/v1/recipes/generate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "authorization")
	assert.Empty(t, w.Body.String())
}

func TestCORSHeadersOnAllResponses(t *testing.T) {
	tests := []struct {
		name       string
		gen        *cannedGenerator
		body       string
		wantStatus int
	}{
		{
			name:       "success",
			gen:        &cannedGenerator{content: `{"recipes":[]}`},
			body:       `{"foodInput":"soup"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "client error",
			gen:        &cannedGenerator{},
			body:       `{"foodInput":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "soft failure",
			gen:        &cannedGenerator{content: "no json at all"},
			body:       `{"foodInput":"soup"}`,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.gen)

			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodPost, "/api/v1/recipes/generate", strings.NewReader(tt.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Origin", "https://app.example.com")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(&cannedGenerator{content: `{"recipes":[]}`})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
