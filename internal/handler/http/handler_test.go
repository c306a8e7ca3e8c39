package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/webcrm-console/internal/config"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/sandbox"
	"github.com/MKhiriev/webcrm-console/internal/utils"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSignKey = "test-sign-key"

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		HTTPAddress:    "localhost:0",
		RequestTimeout: 5 * time.Second,
		RateLimit:      1000,
		TokenSignKey:   testSignKey,
		TokenDuration:  time.Hour,
	}
}

// newTestServer starts the sandbox router on a fresh store.
func newTestServer(t *testing.T, cfg *config.ServerConfig) *httptest.Server {
	t.Helper()
	h := NewHandler(sandbox.NewStore(logger.Nop()), cfg, models.NewAppBuildInfo("1.0.0", "", "abc"), logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func postToken(t *testing.T, srv *httptest.Server, form url.Values) *http.Response {
	t.Helper()
	resp, err := srv.Client().PostForm(srv.URL+"/token", form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func passwordGrant(user, pass string) url.Values {
	return url.Values{"grant_type": {"password"}, "username": {user}, "password": {pass}}
}

// signIn returns a valid bearer token for the demo user.
func signIn(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := postToken(t, srv, passwordGrant(sandbox.DemoUserName, sandbox.DemoPassword))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cred models.Credential
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cred))
	return cred.AccessToken
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

// ─────────────────────────────────────────────
// POST /token
// ─────────────────────────────────────────────

func TestToken_PasswordGrant(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := postToken(t, srv, passwordGrant("Admin", sandbox.DemoPassword))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "bearer", raw["token_type"])
	assert.EqualValues(t, 3600, raw["expires_in"])
	assert.Equal(t, true, raw["hasAdministrativeGrants"])
	assert.Equal(t, sandbox.DemoUserName, raw["userName"])

	subject, err := utils.ValidateJWTToken(raw["access_token"].(string), testSignKey, tokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, sandbox.DemoUserName, subject)
}

func TestToken_Rejected(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{name: "wrong password", form: passwordGrant(sandbox.DemoUserName, "nope")},
		{name: "unknown user", form: passwordGrant("ghost", sandbox.DemoPassword)},
		{name: "unsupported grant", form: url.Values{"grant_type": {"client_credentials"}}},
		{name: "missing grant", form: url.Values{"username": {sandbox.DemoUserName}}},
	}

	srv := newTestServer(t, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postToken(t, srv, tt.form)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, errorMessage(t, resp))
		})
	}
}

// ─────────────────────────────────────────────
// Authorization
// ─────────────────────────────────────────────

func TestAuth_RejectsRequestsWithoutValidToken(t *testing.T) {
	otherKey, err := utils.GenerateJWTToken(tokenIssuer, sandbox.DemoUserName, time.Hour, "other-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", sandbox.DemoUserName, time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer header", header: "Basic YWRtaW46YWRtaW4="},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "foreign signing key", header: "Bearer " + otherKey},
		{name: "foreign issuer", header: "Bearer " + otherIssuer},
	}

	srv := newTestServer(t, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/process/GetSummary", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TokenDuration = time.Second
	srv := newTestServer(t, cfg)
	token := signIn(t, srv)

	// exp has one-second resolution
	time.Sleep(2100 * time.Millisecond)

	resp := do(t, srv, http.MethodGet, "/process/GetSummary", token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ─────────────────────────────────────────────
// Routing
// ─────────────────────────────────────────────

func TestRoutes_CaseInsensitive(t *testing.T) {
	srv := newTestServer(t, testConfig())
	token := signIn(t, srv)

	for _, path := range []string{"/process/GetSummary", "/process/getsummary", "/PROCESS/GETSUMMARY"} {
		resp := do(t, srv, http.MethodGet, path, token, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestCheckHTTPMethod(t *testing.T) {
	srv := newTestServer(t, testConfig())
	token := signIn(t, srv)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "known path, wrong method", method: http.MethodGet, path: "/token"},
		{name: "confirm with GET", method: http.MethodGet, path: "/References/Confirm/511"},
		{name: "unknown path", method: http.MethodGet, path: "/nothing/here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, srv, tt.method, tt.path, token, "")

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestVersion(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := do(t, srv, http.MethodGet, "/version", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var v versionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, "1.0.0", v.Version)
	assert.Equal(t, "N/A", v.Date)
	assert.Equal(t, "abc", v.Commit)
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	srv := newTestServer(t, testConfig())

	t.Run("reuses caller trace id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/version", nil)
		require.NoError(t, err)
		req.Header.Set(traceIDHeader, "my-trace")

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "my-trace", resp.Header.Get(traceIDHeader))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/version", "", "")
		assert.Len(t, resp.Header.Get(traceIDHeader), 36)
	})
}

func TestWithRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 1
	srv := newTestServer(t, cfg)

	first := do(t, srv, http.MethodGet, "/version", "", "")
	second := do(t, srv, http.MethodGet, "/version", "", "")

	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.Equal(t, "1", second.Header.Get("Retry-After"))
}

func TestWithLogging_RecordsStatus(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()

	var lw *responseWriter
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw = w.(*responseWriter)
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("tea"))
	})

	h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, http.StatusTeapot, lw.status)
	assert.Equal(t, 3, lw.size)
}

// ─────────────────────────────────────────────
// Confirmation workflow
// ─────────────────────────────────────────────

func TestDecide(t *testing.T) {
	const (
		confirmBody = `{"isConfirmation":true,"isActive":true}`
		dismissBody = `{"isConfirmation":false,"isActive":false}`
	)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{name: "confirm", path: "/References/Confirm/511", body: confirmBody, wantStatus: http.StatusOK},
		{name: "dismiss", path: "/Destinations/Dismiss/110", body: dismissBody, wantStatus: http.StatusOK},
		{name: "body disagrees with endpoint", path: "/References/Confirm/511", body: dismissBody, wantStatus: http.StatusBadRequest},
		{name: "malformed body", path: "/References/Dismiss/511", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "unknown id", path: "/Destinations/Confirm/999", body: confirmBody, wantStatus: http.StatusNotFound},
		{name: "live record", path: "/Destinations/Confirm/100", body: confirmBody, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, testConfig())
			token := signIn(t, srv)

			resp := do(t, srv, http.MethodPost, tt.path, token, tt.body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCreateDestination_InvalidRecord(t *testing.T) {
	srv := newTestServer(t, testConfig())
	token := signIn(t, srv)

	resp := do(t, srv, http.MethodPost, "/Destinations/Create", token, `{"customerId":99,"descr1":"x"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errorMessage(t, resp), "invalid record")
}

func TestStatusFromError_Unmapped(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
	assert.Equal(t, http.StatusConflict, statusFromError(sandbox.ErrNotProposed))
}
