package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiertc/adivina-go/internal/api"
	"github.com/javiertc/adivina-go/internal/api/response"
	"github.com/javiertc/adivina-go/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		GameService:        app.GameService,
		LeaderboardService: app.LeaderboardService,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// registerAndLogin registers a user and returns a valid token
func (ts *testServer) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	registerBody := map[string]string{
		"usuario":  username,
		"correo":   username + "@example.com",
		"password": "pw1",
	}
	rr := ts.request(http.MethodPost, "/register", registerBody, "")
	require.Equal(t, http.StatusOK, rr.Code)

	loginBody := map[string]string{"usuario": username, "password": "pw1"}
	rr = ts.request(http.MethodPost, "/login", loginBody, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// winGame plays a started game to completion by binary search on the hints,
// returning the number of guesses made
func (ts *testServer) winGame(t *testing.T, token string) int {
	t.Helper()

	low, high := 1, 100
	for attempts := 1; attempts <= 100; attempts++ {
		guess := (low + high) / 2
		rr := ts.request(http.MethodPost, "/guess", map[string]int{"numero": guess}, token)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp response.MessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		switch resp.Message {
		case "¡Felicitaciones! Has adivinado el número":
			return attempts
		case "El número es mayor":
			low = guess + 1
		case "El número es menor":
			high = guess - 1
		default:
			t.Fatalf("unexpected guess response: %q", resp.Message)
		}
	}
	t.Fatal("game not won within 100 guesses")
	return 0
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	registerBody := map[string]string{
		"usuario":  "ana",
		"correo":   "ana@example.com",
		"password": "pw1",
	}
	rr := ts.request(http.MethodPost, "/register", registerBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var registerResp response.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registerResp))
	assert.Equal(t, "Usuario registrado exitosamente", registerResp.Message)

	loginBody := map[string]string{"usuario": "ana", "password": "pw1"}
	rr = ts.request(http.MethodPost, "/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, "Login exitoso", loginResp.Message)
	assert.NotEmpty(t, loginResp.Token)
}

func TestRegisterDuplicateFails(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"usuario": "ana", "correo": "a@b.c", "password": "pw1"}
	rr := ts.request(http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/register", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Usuario ya existe")
}

func TestLoginWithBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/login", map[string]string{"usuario": "ana", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Credenciales inválidas")

	rr = ts.request(http.MethodPost, "/login", map[string]string{"usuario": "nobody", "password": "pw1"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/start"},
		{http.MethodPost, "/guess"},
		{http.MethodPost, "/restart"},
		{http.MethodGet, "/status"},
		{http.MethodGet, "/leaderboard"},
		{http.MethodGet, "/statistics"},
	}

	for _, p := range paths {
		rr := ts.request(p.method, p.path, nil, "")
		assert.Equal(t, http.StatusForbidden, rr.Code, "%s %s without token", p.method, p.path)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/start", nil, "not-a-real-token")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Token inválido")
}

func TestMalformedAuthorizationHeaderRejected(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	req := httptest.NewRequest(http.MethodPost, "/start", nil)
	req.Header.Set("Authorization", token) // no scheme
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestStatusBeforeStartFails(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodGet, "/status", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No hay juego activo")
}

func TestStartAndStatus(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/start", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Juego iniciado")

	rr = ts.request(http.MethodGet, "/status", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var status response.StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Zero(t, status.Intentos)
	assert.False(t, status.Completado)
}

func TestGuessWithoutStartFails(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/guess", map[string]int{"numero": 50}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Debes iniciar un juego primero")
}

func TestGuessRequiresNumero(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/guess", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFullGameFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	attempts := ts.winGame(t, token)

	// Status reflects the completed game
	rr = ts.request(http.MethodGet, "/status", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var status response.StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, attempts, status.Intentos)
	assert.True(t, status.Completado)

	// Statistics reflect the scoring law
	expectedPoints := 100 - attempts*10
	if expectedPoints < 10 {
		expectedPoints = 10
	}

	rr = ts.request(http.MethodGet, "/statistics", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats response.StatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.PartidasJugadas)
	assert.Equal(t, expectedPoints, stats.Puntos)

	// Leaderboard contains the winner with those points
	rr = ts.request(http.MethodGet, "/leaderboard", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "ana", entries[0].Usuario)
	assert.Equal(t, expectedPoints, entries[0].Puntos)
	assert.Equal(t, 1, entries[0].PartidasJugadas)
}

func TestGuessAfterCompletionFails(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	attempts := ts.winGame(t, token)

	rr = ts.request(http.MethodPost, "/guess", map[string]int{"numero": 50}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "El juego ya fue completado")

	// Attempt count is unchanged
	rr = ts.request(http.MethodGet, "/status", nil, token)
	var status response.StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, attempts, status.Intentos)
}

func TestRestartResetsSession(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodPost, "/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	ts.winGame(t, token)

	rr = ts.request(http.MethodPost, "/restart", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Juego reiniciado")

	rr = ts.request(http.MethodGet, "/status", nil, token)
	var status response.StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Zero(t, status.Intentos)
	assert.False(t, status.Completado)
}

func TestLeaderboardEmptyBeforeAnyWin(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodGet, "/leaderboard", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestLeaderboardSortedAcrossUsers(t *testing.T) {
	ts := newTestServer(t)

	var tokens []string
	for i := 0; i < 3; i++ {
		token := ts.registerAndLogin(t, fmt.Sprintf("user%d", i))
		tokens = append(tokens, token)
	}

	for _, token := range tokens {
		rr := ts.request(http.MethodPost, "/start", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		ts.winGame(t, token)
	}

	rr := ts.request(http.MethodGet, "/leaderboard", nil, tokens[0])
	require.Equal(t, http.StatusOK, rr.Code)

	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Puntos, entries[i].Puntos)
	}
}

func TestStatisticsForFreshUser(t *testing.T) {
	ts := newTestServer(t)
	token := ts.registerAndLogin(t, "ana")

	rr := ts.request(http.MethodGet, "/statistics", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var stats response.StatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Zero(t, stats.PartidasJugadas)
	assert.Zero(t, stats.Puntos)
}

func TestRegisterValidatesFields(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/register", map[string]string{"usuario": "ana"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
