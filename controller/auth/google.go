package auth

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"pharmapp/config"
	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/model"
	"pharmapp/services"
	"pharmapp/store"
)

const stateCookieName = "oauth_state"

func GoogleAuthController(router *gin.Engine, cfg *config.Config, users store.UserStore) {
	conf := services.GoogleOAuthConfig(cfg)

	router.GET("/auth/google", func(c *gin.Context) {
		BeginGoogleLogin(c, conf)
	})
	router.GET("/auth/google/callback", func(c *gin.Context) {
		GoogleCallback(c, cfg, conf, users)
	})
}

// BeginGoogleLogin sends the browser to Google's consent screen with a random
// state bound to a short-lived cookie.
func BeginGoogleLogin(c *gin.Context, conf *oauth2.Config) {
	state := uuid.New().String()
	c.SetCookie(stateCookieName, state, 600, "/", "", false, true)

	authURL := conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
	c.Redirect(http.StatusFound, authURL)
}

func GoogleCallback(c *gin.Context, cfg *config.Config, conf *oauth2.Config, users store.UserStore) {
	if c.Query("error") != "" {
		failLogin(c, cfg)
		return
	}

	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || cookieState == "" || c.Query("state") != cookieState {
		failLogin(c, cfg)
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		failLogin(c, cfg)
		return
	}

	ctx := c.Request.Context()
	profile, err := services.FetchGoogleProfile(ctx, conf, code)
	if err != nil {
		slog.Error("google profile fetch failed", sl.Err(err))
		failLogin(c, cfg)
		return
	}

	// Login is keyed by googleId. Unknown profiles get a fresh user document.
	user, err := users.FindUserByGoogleID(ctx, profile.GoogleID)
	if err == store.ErrNotFound {
		user = &model.User{
			UserID:      uuid.New().String(),
			GoogleID:    profile.GoogleID,
			Email:       profile.Email,
			DisplayName: profile.DisplayName,
			Picture:     profile.Picture,
			CreatedAt:   time.Now(),
		}
		err = users.CreateUser(ctx, user)
	}
	if err != nil {
		slog.Error("google login: user lookup failed", sl.Err(err))
		failLogin(c, cfg)
		return
	}

	token, err := services.CreateAccessToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	safeUser := dto.UserResponseFrom(user)
	onboardingRequired := !user.OnboardingCompleted

	if cfg.AuthSuccessURL != "" {
		encodedUser, err := json.Marshal(safeUser)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode user"})
			return
		}
		successURL := buildRedirectURL(cfg.AuthSuccessURL, map[string]string{
			"token":              token,
			"user":               base64.RawURLEncoding.EncodeToString(encodedUser),
			"onboardingRequired": boolString(onboardingRequired),
		})
		c.Redirect(http.StatusFound, successURL)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":              token,
		"user":               safeUser,
		"onboardingRequired": onboardingRequired,
	})
}

func failLogin(c *gin.Context, cfg *config.Config) {
	if cfg.AuthFailureURL != "" {
		failureURL := buildRedirectURL(cfg.AuthFailureURL, map[string]string{"error": "auth_failed"})
		c.Redirect(http.StatusFound, failureURL)
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
}

func buildRedirectURL(baseURL string, params map[string]string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	query := parsed.Query()
	for key, value := range params {
		if value != "" {
			query.Set(key, value)
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
