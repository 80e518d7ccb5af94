package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-house/internal/auctionEngine"
	"auction-house/internal/clock"
	"auction-house/internal/seed"
	"auction-house/internal/server"
	"auction-house/internal/store"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "integration-test-secret"

// SetupTestRouter initializes the full stack over an in-memory store for
// integration testing: engine, middleware, and routes.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	engine, err := auction.New(context.Background(), st, clock.Real{}, auction.Seed{
		Items: seed.Items(),
		Users: seed.Users(),
	})
	if err != nil {
		t.Fatalf("failed to initialize engine: %v", err)
	}
	return server.SetupRouter(engine, testJWTSecret, time.Hour)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope. An empty token leaves the request unauthenticated.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Login authenticates the given seed account and returns its session token.
func Login(t *testing.T, router *gin.Engine, username, password, role string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", "", map[string]any{
		"username": username,
		"password": password,
		"role":     role,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login for %s failed with status %d: %v", username, w.Code, resp)
	}

	token := resp["data"].(map[string]any)["token"].(string)
	if token == "" {
		t.Fatalf("login for %s returned an empty token", username)
	}
	return token
}
