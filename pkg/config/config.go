package config

import (
	"os"
)

// OAuthScopes are the GitHub scopes requested during authorization.
var OAuthScopes = []string{"user:email", "repo"}

// Config holds the OAuth client credentials supplied via the process
// environment. ClientID and ClientSecret are checked lazily by the
// operations that need them, so a missing value surfaces as a
// configuration error instead of a malformed request.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Load reads the OAuth configuration from the environment.
func Load() Config {
	return Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		RedirectURI:  os.Getenv("GITHUB_REDIRECT_URI"),
	}
}
