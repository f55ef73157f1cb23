package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"pharmapp/config"
)

// GoogleProfile is the verified identity tuple the rest of the backend consumes.
type GoogleProfile struct {
	GoogleID    string
	Email       string
	DisplayName string
	Picture     string
}

func GoogleOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleCallbackURL,
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// FetchGoogleProfile exchanges the authorization code and reads the userinfo
// endpoint for the caller's Google identity.
func FetchGoogleProfile(ctx context.Context, conf *oauth2.Config, code string) (*GoogleProfile, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}
	if info.Id == "" || info.Email == "" {
		return nil, errors.New("google profile is missing required fields")
	}

	name := info.Name
	if name == "" {
		name = "Google User"
	}

	return &GoogleProfile{
		GoogleID:    info.Id,
		Email:       strings.ToLower(info.Email),
		DisplayName: name,
		Picture:     info.Picture,
	}, nil
}
