package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/just-nibble/github-link/internal/adapters/api"
	"github.com/just-nibble/github-link/internal/adapters/db"
	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/just-nibble/github-link/pkg/errcodes"
)

// AuthRequest is a pending authorization request. The service holds at
// most one at a time; beginning a new authorization replaces it.
type AuthRequest struct {
	State     string
	URL       string
	CreatedAt time.Time
}

// AuthOutcome classifies how an interactive authorization ended
type AuthOutcome string

const (
	AuthSuccess  AuthOutcome = "success"
	AuthCanceled AuthOutcome = "cancel"
	AuthFailed   AuthOutcome = "failure"
)

// AuthResult is the outcome of an interactive authorization. Code is set
// only on success; Reason only on failure.
type AuthResult struct {
	Outcome AuthOutcome
	Code    string
	Reason  string
}

// Authorizer presents an authorization request to the user and reports
// how the interaction ended. Implementations are external collaborators
// (a browser or web view); the call suspends until the user completes or
// dismisses the consent screen.
type Authorizer interface {
	Authorize(ctx context.Context, req *AuthRequest) (AuthResult, error)
}

// ConnectionService manages the OAuth authorization-code lifecycle and
// the persisted connection record for each user.
type ConnectionService struct {
	cs          db.ConnectionStore
	oauthClient *api.OAuthClient
	gc          *api.GitHubClient

	mu      sync.Mutex
	pending *AuthRequest
}

func NewConnectionService(cs db.ConnectionStore, oc *api.OAuthClient, gc *api.GitHubClient) *ConnectionService {
	return &ConnectionService{
		cs:          cs,
		oauthClient: oc,
		gc:          gc,
	}
}

// BeginAuthorization constructs a fresh authorization request and records
// it as the single pending request, replacing any earlier one so two
// flows never run against conflicting requests.
func (s *ConnectionService) BeginAuthorization() (*AuthRequest, error) {
	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %v", err)
	}

	url, err := s.oauthClient.AuthorizeURL(state)
	if err != nil {
		return nil, err
	}

	req := &AuthRequest{
		State:     state,
		URL:       url,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.pending = req
	s.mu.Unlock()

	return req, nil
}

// StartInteractiveFlow begins an authorization and hands it to the
// authorizer for user consent. The pending request is cleared however the
// interaction ends, so a dismissed flow does not leak it.
func (s *ConnectionService) StartInteractiveFlow(ctx context.Context, authorizer Authorizer) (AuthResult, error) {
	req, err := s.BeginAuthorization()
	if err != nil {
		return AuthResult{}, err
	}
	defer s.clearPending(req.State)

	result, err := authorizer.Authorize(ctx, req)
	if err != nil {
		return AuthResult{}, fmt.Errorf("authorization flow failed: %v", err)
	}

	return result, nil
}

// ConsumeAuthState reports whether state belongs to the pending request
// and clears the request when it does. Used by the redirect callback to
// tie the returned code to the request this service issued.
func (s *ConnectionService) ConsumeAuthState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.State != state {
		return false
	}
	s.pending = nil
	return true
}

func (s *ConnectionService) clearPending(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil && s.pending.State == state {
		s.pending = nil
	}
}

// ExchangeCodeForToken exchanges an authorization code for token material
func (s *ConnectionService) ExchangeCodeForToken(ctx context.Context, code string) (*api.OAuthTokens, error) {
	return s.oauthClient.ExchangeCode(ctx, code)
}

// FetchExternalUser fetches the GitHub identity the token belongs to
func (s *ConnectionService) FetchExternalUser(ctx context.Context, accessToken string) (*api.User, error) {
	return s.gc.GetAuthenticatedUser(ctx, accessToken)
}

// Save builds a connection snapshot for the user and upserts it keyed on
// the user id, so reconnecting replaces the prior credential.
func (s *ConnectionService) Save(ctx context.Context, userID string, tokens *api.OAuthTokens, user *api.User) (*entities.Connection, error) {
	now := time.Now()
	conn := &entities.Connection{
		UserID:          userID,
		GithubUserID:    user.ID,
		GithubUsername:  user.Login,
		GithubAvatarURL: user.AvatarURL,
		AccessToken:     tokens.AccessToken,
		TokenType:       tokens.TokenType,
		Scope:           tokens.Scope,
		ConnectedAt:     now,
		UpdatedAt:       now,
	}

	if err := s.cs.UpsertConnection(ctx, conn); err != nil {
		return nil, &errcodes.PersistenceError{Op: "save connection", Err: err}
	}

	return conn, nil
}

// Get returns the user's connection, or (nil, nil) when none exists
func (s *ConnectionService) Get(ctx context.Context, userID string) (*entities.Connection, error) {
	conn, err := s.cs.GetConnectionByUserID(ctx, userID)
	if err != nil {
		return nil, &errcodes.PersistenceError{Op: "get connection", Err: err}
	}
	return conn, nil
}

// Remove deletes the user's connection. Removing a user with no
// connection is a no-op.
func (s *ConnectionService) Remove(ctx context.Context, userID string) error {
	if err := s.cs.DeleteConnectionByUserID(ctx, userID); err != nil {
		return &errcodes.PersistenceError{Op: "remove connection", Err: err}
	}
	return nil
}

// Validate probes GitHub with the token and reports whether it is still
// accepted. Stored tokens can be revoked out-of-band, so local state is
// never trusted on its own. Never returns an error.
func (s *ConnectionService) Validate(ctx context.Context, accessToken string) bool {
	return s.gc.ValidateToken(ctx, accessToken)
}

// CompleteConnection runs the post-consent half of the flow: exchange the
// code, fetch the external identity, persist the connection.
func (s *ConnectionService) CompleteConnection(ctx context.Context, userID, code string) (*entities.Connection, error) {
	tokens, err := s.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.FetchExternalUser(ctx, tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	return s.Save(ctx, userID, tokens, user)
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
