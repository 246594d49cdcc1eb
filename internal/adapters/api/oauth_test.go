package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/just-nibble/github-link/pkg/config"
	"github.com/just-nibble/github-link/pkg/errcodes"
)

func newMockOAuthClient(cfg config.Config, rt func(req *http.Request) (*http.Response, error)) *OAuthClient {
	client := NewOAuthClient(cfg)
	client.HTTPClient = &http.Client{
		Transport: &MockTransport{RoundTripper: rt},
	}
	return client
}

func testConfig() config.Config {
	return config.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "myapp://oauth/callback",
	}
}

func TestAuthorizeURL(t *testing.T) {
	client := NewOAuthClient(testConfig())

	url, err := client.AuthorizeURL("state-abc")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, want := range []string{
		"https://github.com/login/oauth/authorize",
		"client_id=client-id",
		"state=state-abc",
		"user%3Aemail",
		"repo",
	} {
		if !strings.Contains(url, want) {
			t.Errorf("Expected authorization URL to contain %q, got %s", want, url)
		}
	}
}

func TestAuthorizeURLMissingClientID(t *testing.T) {
	client := NewOAuthClient(config.Config{})

	_, err := client.AuthorizeURL("state-abc")

	var configErr *errcodes.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("Expected a ConfigurationError, got %T: %v", err, err)
	}
}

func TestExchangeCodeSuccess(t *testing.T) {
	client := newMockOAuthClient(testConfig(), func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", req.Method)
		}
		if req.URL.String() != "https://github.com/login/oauth/access_token" {
			t.Errorf("Unexpected request URL: %s", req.URL.String())
		}

		var payload map[string]string
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Errorf("Failed to decode request payload: %v", err)
		}
		if payload["client_id"] != "client-id" || payload["client_secret"] != "client-secret" || payload["code"] != "auth-code" {
			t.Errorf("Unexpected payload: %v", payload)
		}

		return jsonResponse(http.StatusOK, `{"access_token": "gho_token", "token_type": "bearer", "scope": "repo,user:email"}`), nil
	})

	tokens, err := client.ExchangeCode(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if tokens.AccessToken != "gho_token" {
		t.Errorf("Expected access token 'gho_token', got %s", tokens.AccessToken)
	}
	if tokens.TokenType != "bearer" {
		t.Errorf("Expected token type 'bearer', got %s", tokens.TokenType)
	}
	if tokens.Scope != "repo,user:email" {
		t.Errorf("Expected scope 'repo,user:email', got %s", tokens.Scope)
	}
}

func TestExchangeCodeProviderError(t *testing.T) {
	client := newMockOAuthClient(testConfig(), func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"error": "bad_verification_code", "error_description": "The code passed is incorrect or expired."}`), nil
	})

	_, err := client.ExchangeCode(context.Background(), "stale-code")

	var providerErr *errcodes.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("Expected a ProviderError, got %T: %v", err, err)
	}
	if providerErr.Error() != "The code passed is incorrect or expired." {
		t.Errorf("Expected error_description as the message, got %s", providerErr.Error())
	}
}

func TestExchangeCodeProviderErrorWithoutDescription(t *testing.T) {
	client := newMockOAuthClient(testConfig(), func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"error": "incorrect_client_credentials"}`), nil
	})

	_, err := client.ExchangeCode(context.Background(), "auth-code")

	var providerErr *errcodes.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("Expected a ProviderError, got %T: %v", err, err)
	}
	if providerErr.Error() != "incorrect_client_credentials" {
		t.Errorf("Expected the error code as the message, got %s", providerErr.Error())
	}
}

func TestExchangeCodeMissingAccessToken(t *testing.T) {
	// Neither an access_token nor an error field: a partial token object
	// must never be returned.
	client := newMockOAuthClient(testConfig(), func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"token_type": "bearer"}`), nil
	})

	tokens, err := client.ExchangeCode(context.Background(), "auth-code")
	if tokens != nil {
		t.Errorf("Expected no token object, got %+v", tokens)
	}

	var protocolErr *errcodes.ProtocolError
	if !errors.As(err, &protocolErr) {
		t.Fatalf("Expected a ProtocolError, got %T: %v", err, err)
	}
}

func TestExchangeCodeUnparseableBody(t *testing.T) {
	client := newMockOAuthClient(testConfig(), func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `access_token=gho_token&token_type=bearer`), nil
	})

	_, err := client.ExchangeCode(context.Background(), "auth-code")

	var protocolErr *errcodes.ProtocolError
	if !errors.As(err, &protocolErr) {
		t.Fatalf("Expected a ProtocolError, got %T: %v", err, err)
	}
}

func TestExchangeCodeNonSuccessStatus(t *testing.T) {
	client := newMockOAuthClient(testConfig(), func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `oops`), nil
	})

	_, err := client.ExchangeCode(context.Background(), "auth-code")

	var protocolErr *errcodes.ProtocolError
	if !errors.As(err, &protocolErr) {
		t.Fatalf("Expected a ProtocolError, got %T: %v", err, err)
	}
	if protocolErr.Status != http.StatusBadGateway {
		t.Errorf("Expected status 502 in error, got %d", protocolErr.Status)
	}
}

func TestExchangeCodeMissingSecret(t *testing.T) {
	client := newMockOAuthClient(config.Config{ClientID: "client-id"}, func(req *http.Request) (*http.Response, error) {
		t.Error("No request should be made without a client secret")
		return nil, fmt.Errorf("unexpected request")
	})

	_, err := client.ExchangeCode(context.Background(), "auth-code")

	var configErr *errcodes.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("Expected a ConfigurationError, got %T: %v", err, err)
	}
}
