//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	achievementrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/achievement"
	recordrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/record"
	sessionrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/session"
	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/token"
	userrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/user"
	wordrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/word"
	authpkg "github.com/promisinganuj/kids-vocabulary-app/internal/auth"
	"github.com/promisinganuj/kids-vocabulary-app/internal/config"
	authsvc "github.com/promisinganuj/kids-vocabulary-app/internal/service/auth"
	studysvc "github.com/promisinganuj/kids-vocabulary-app/internal/service/study"
	usersvc "github.com/promisinganuj/kids-vocabulary-app/internal/service/user"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/vocabulary"
	"github.com/promisinganuj/kids-vocabulary-app/internal/transport/middleware"
	"github.com/promisinganuj/kids-vocabulary-app/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Clock  *clockwork.FakeClock
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The study service runs on
// a fake clock so tests can advance time deterministically.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	words := wordrepo.New(pool)
	sessions := sessionrepo.NewRepo(pool)
	records := recordrepo.NewRepo(pool)
	achievements := achievementrepo.NewRepo(pool)
	users := userrepo.NewRepo(pool)
	tokens := tokenrepo.NewRepo(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4, // bcrypt.MinCost, keeps registration fast
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	clock := clockwork.NewFakeClockAt(time.Now())

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, authCfg)
	vocabService := vocabulary.NewService(logger, words, config.WordsConfig{
		MaxPerUser:      10000,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
	studyService := studysvc.NewService(logger, words, sessions, records, achievements, txm, clock, 10)
	userService := usersvc.NewService(logger, users, words, sessions)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)

	router := rest.NewRouter(rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		Words:  rest.NewWordsHandler(vocabService, logger),
		Study:  rest.NewStudyHandler(studyService, logger),
		User:   rest.NewUserHandler(userService, logger),
		Admin:  rest.NewAdminHandler(userService, logger),
		Health: rest.NewHealthHandler(pool, "test-version"),
	}, chain)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Clock:  clock,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// api sends a JSON request and returns status + decoded body. body may be
// nil; token may be empty for anonymous requests.
func (ts *testServer) api(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// apiList is api for endpoints that return a JSON array.
func (ts *testServer) apiList(t *testing.T, method, path string, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerUser registers a fresh user through the API and returns the
// access token plus the full auth response.
func registerUser(t *testing.T, ts *testServer) (string, map[string]any) {
	t.Helper()

	suffix := uuid.NewString()[:8]
	status, body := ts.api(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    fmt.Sprintf("kid-%s@example.com", suffix),
		"username": "kid-" + suffix,
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in %v", body)
	return token, body
}

// createWord adds a word to the authenticated user's library and returns
// its id.
func createWord(t *testing.T, ts *testServer, token, text string) string {
	t.Helper()

	status, body := ts.api(t, http.MethodPost, "/api/words", map[string]any{
		"text":         text,
		"partOfSpeech": "noun",
		"definition":   "definition of " + text,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create word: %v", body)

	id, ok := body["id"].(string)
	require.True(t, ok, "expected word id in %v", body)
	return id
}
