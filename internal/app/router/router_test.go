package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petmatch_backend/internal/config"
	adoptionhandler "petmatch_backend/internal/feature/adoptions/transport/handler"
	animalhandler "petmatch_backend/internal/feature/animals/transport/handler"
	authhandler "petmatch_backend/internal/feature/auth/transport/handler"
	userhandler "petmatch_backend/internal/feature/users/transport/handler"
	jwtmw "petmatch_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, jwtmw.TokenService) {
	t.Helper()

	cfg := &config.Config{
		CORSOrigins: []string{"http://localhost:5173"},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwtmw.NewTokenService("test-secret", time.Hour)

	// The guard aborts before any handler runs, so the usecases are
	// not needed for wiring and auth checks.
	r := New(cfg, log, tokens,
		authhandler.NewAuthHandler(nil, false),
		userhandler.NewUserHandler(nil, false),
		animalhandler.NewAnimalHandler(nil, false),
		adoptionhandler.NewAdoptionHandler(nil, false),
	)
	return r, tokens
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/", wantStatus: http.StatusOK},
		{path: "/health", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/verify"},
		{http.MethodGet, "/auth/check-admin"},
		{http.MethodGet, "/auth/profile"},
		{http.MethodGet, "/user/"},
		{http.MethodGet, "/user/1"},
		{http.MethodGet, "/animais/"},
		{http.MethodGet, "/animais/disponiveis"},
		{http.MethodGet, "/animais/status/adotado"},
		{http.MethodGet, "/animais/especie/gato"},
		{http.MethodPost, "/animais/"},
		{http.MethodGet, "/doacoes/"},
		{http.MethodGet, "/doacoes/estatisticas"},
		{http.MethodPost, "/doacoes/resgate"},
		{http.MethodPost, "/doacoes/adocao"},
		{http.MethodPut, "/doacoes/1/observacoes"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"msg":"Token não fornecido"}`, w.Body.String())
		})
	}
}

func TestRouter_ValidTokenPassesTheGuard(t *testing.T) {
	r, tokens := newTestRouter(t)

	token, err := tokens.Issue(jwtmw.Identity{ID: 1, Email: "maria@example.com", Nome: "Maria"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token válido")
}

func TestRouter_StaticAndParamRoutesCoexist(t *testing.T) {
	// /animais/disponiveis and /doacoes/estatisticas must not be
	// captured by the :id routes next to them.
	r, tokens := newTestRouter(t)

	token, err := tokens.Issue(jwtmw.Identity{ID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/animais/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// the param route catches the non-numeric segment, proving the
	// static siblings are matched separately
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"ID inválido"}`, w.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("allowed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
