package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmapp/config"
	"pharmapp/store/storetest"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:       "test-secret",
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleCallbackURL:  "http://localhost:8080/auth/google/callback",
		AuthSuccessURL:     "http://localhost:3000/auth",
		AuthFailureURL:     "http://localhost:3000/auth",
	}
}

func authRouter(cfg *config.Config, users *storetest.MockUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	GoogleAuthController(router, cfg, users)
	return router
}

func TestBeginGoogleLogin(t *testing.T) {
	router := authRouter(testConfig(), new(storetest.MockUserStore))

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Contains(t, location.Host, "accounts.google.com")
	assert.Equal(t, "client-id", location.Query().Get("client_id"))
	assert.Equal(t, "select_account", location.Query().Get("prompt"))
	assert.NotEmpty(t, location.Query().Get("state"))

	// The state is bound to a cookie for the callback to verify.
	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == stateCookieName {
			found = true
			assert.Equal(t, location.Query().Get("state"), cookie.Value)
		}
	}
	assert.True(t, found, "state cookie must be set")
}

func TestGoogleCallbackRejectsBadState(t *testing.T) {
	router := authRouter(testConfig(), new(storetest.MockUserStore))

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "genuine"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "auth_failed", location.Query().Get("error"))
}

func TestGoogleCallbackRejectsProviderError(t *testing.T) {
	cfg := testConfig()
	cfg.AuthFailureURL = "" // fall back to a JSON error
	router := authRouter(cfg, new(storetest.MockUserStore))

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication failed")
}

func TestBuildRedirectURL(t *testing.T) {
	got := buildRedirectURL("http://localhost:3000/auth?keep=1", map[string]string{
		"token": "tok",
		"empty": "",
	})

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "1", parsed.Query().Get("keep"))
	assert.Equal(t, "tok", parsed.Query().Get("token"))
	assert.False(t, parsed.Query().Has("empty"))
}
