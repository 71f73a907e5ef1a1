package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pawerflow/question-service/internal/auth"
	"github.com/pawerflow/question-service/internal/config"
	"github.com/pawerflow/question-service/pkg/ctxutil"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

func testConfig(driver string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: driver},
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Questions: config.QuestionsConfig{DefaultPageSize: 20, MaxPageSize: 100, SeedTagsOnStartup: true},
	}
}

// testServer wraps a full-stack HTTP server built by newHandler.
type testServer struct {
	URL    string
	Client *http.Client
	jwt    *auth.JWTManager
}

func startServer(t *testing.T, cfg *config.Config, handler http.Handler) *testServer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		jwt:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.AccessTokenTTL),
	}
}

// call sends a JSON request as userID (anonymous when empty) and decodes
// the response into out when out is non-nil.
func (ts *testServer) call(t *testing.T, method, path, userID string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := ts.jwt.GenerateAccessToken(ctxutil.Identity{UserID: userID, DisplayName: userID})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type questionBody struct {
	ID                string `json:"id"`
	HasAcceptedAnswer bool   `json:"hasAcceptedAnswer"`
	ViewCount         int    `json:"viewCount"`
	AnswerCount       int    `json:"answerCount"`
	Answers           []struct {
		ID         string `json:"id"`
		IsAccepted bool   `json:"isAccepted"`
	} `json:"answers"`
}

func (ts *testServer) ask(t *testing.T, userID string, tags ...string) questionBody {
	t.Helper()
	var q questionBody
	status := ts.call(t, http.MethodPost, "/api/v1/questions", userID, map[string]any{
		"title":   "Is it safe to give my rabbit carrots every day?",
		"content": "I read they are high in sugar.",
		"tags":    tags,
	}, &q)
	require.Equal(t, http.StatusCreated, status)
	return q
}

func (ts *testServer) usage(t *testing.T, slug string) int {
	t.Helper()
	var tg struct {
		UsageCount int `json:"usageCount"`
	}
	require.Equal(t, http.StatusOK, ts.call(t, http.MethodGet, "/api/v1/tags/"+slug, "", nil, &tg))
	return tg.UsageCount
}
