package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"github.com/just-nibble/github-link/pkg/config"
	"github.com/just-nibble/github-link/pkg/errcodes"
)

// OAuthClient talks to GitHub's OAuth endpoints: it builds authorization
// URLs and exchanges authorization codes for access tokens.
type OAuthClient struct {
	cfg        config.Config
	HTTPClient *http.Client
}

// NewOAuthClient creates a new OAuthClient with a timeout
func NewOAuthClient(cfg config.Config) *OAuthClient {
	return &OAuthClient{
		cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// OAuthTokens is the token material returned by a successful code exchange
type OAuthTokens struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// tokenResponse is the raw token endpoint response; on failure GitHub
// returns 200 with an error field instead of a non-success status.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// AuthorizeURL builds the authorization URL the user is sent to for
// consent. It fails with a ConfigurationError when the client id is absent.
func (c *OAuthClient) AuthorizeURL(state string) (string, error) {
	if c.cfg.ClientID == "" {
		return "", &errcodes.ConfigurationError{Missing: "GITHUB_CLIENT_ID"}
	}

	conf := &oauth2.Config{
		ClientID:    c.cfg.ClientID,
		RedirectURL: c.cfg.RedirectURI,
		Scopes:      config.OAuthScopes,
		Endpoint:    oauthgithub.Endpoint,
	}

	return conf.AuthCodeURL(state), nil
}

// ExchangeCode performs a single POST to the token endpoint exchanging an
// authorization code for an access token. It does not retry: authorization
// codes are single-use and short-lived, so replaying a failed exchange is
// not meaningful.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*OAuthTokens, error) {
	if c.cfg.ClientID == "" {
		return nil, &errcodes.ConfigurationError{Missing: "GITHUB_CLIENT_ID"}
	}
	if c.cfg.ClientSecret == "" {
		return nil, &errcodes.ConfigurationError{Missing: "GITHUB_CLIENT_SECRET"}
	}

	payload, err := json.Marshal(map[string]string{
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"code":          code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode token request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oauthgithub.Endpoint.TokenURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errcodes.ProtocolError{Status: resp.StatusCode, Reason: "token exchange failed"}
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &errcodes.ProtocolError{Reason: fmt.Sprintf("failed to decode token response: %v", err)}
	}

	if body.Error != "" {
		return nil, &errcodes.ProviderError{Code: body.Error, Description: body.ErrorDescription}
	}

	if body.AccessToken == "" {
		return nil, &errcodes.ProtocolError{Reason: "token response missing access_token"}
	}

	return &OAuthTokens{
		AccessToken: body.AccessToken,
		TokenType:   body.TokenType,
		Scope:       body.Scope,
	}, nil
}
