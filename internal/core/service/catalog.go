package service

import (
	"context"

	"github.com/just-nibble/github-link/internal/adapters/api"
	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/just-nibble/github-link/pkg/errcodes"
)

// TokenValidator is the validate-before-use gate the catalog runs every
// fetch through. Satisfied by ConnectionService.
type TokenValidator interface {
	Validate(ctx context.Context, accessToken string) bool
}

// CatalogService fetches repositories and issue data for a connected
// account, gated by connection validity.
type CatalogService struct {
	validator TokenValidator
	gc        *api.GitHubClient
}

func NewCatalogService(validator TokenValidator, gc *api.GitHubClient) *CatalogService {
	return &CatalogService{
		validator: validator,
		gc:        gc,
	}
}

// ListRepositoriesWithValidation validates the stored token first and
// fails with ErrExpiredConnection before attempting any fetch when the
// token is no longer accepted. On a valid token it returns a single page
// of the user's repositories sorted by most recently updated.
func (s *CatalogService) ListRepositoriesWithValidation(ctx context.Context, conn *entities.Connection) ([]api.Repository, error) {
	if conn == nil {
		return nil, errcodes.ErrNoConnection
	}

	if !s.validator.Validate(ctx, conn.AccessToken) {
		return nil, errcodes.ErrExpiredConnection
	}

	return s.gc.ListRepositories(ctx, conn.AccessToken)
}

// ListIssues fetches a repository's issues, filtered server-side by state
func (s *CatalogService) ListIssues(ctx context.Context, accessToken, owner, repo, state string) ([]api.Issue, error) {
	return s.gc.ListIssues(ctx, accessToken, owner, repo, state)
}

// GetIssue fetches a single issue by number
func (s *CatalogService) GetIssue(ctx context.Context, accessToken, owner, repo string, number int) (*api.Issue, error) {
	return s.gc.GetIssue(ctx, accessToken, owner, repo, number)
}

// ListIssueComments fetches a single page of comments for an issue
func (s *CatalogService) ListIssueComments(ctx context.Context, accessToken, owner, repo string, number int) ([]api.Comment, error) {
	return s.gc.ListIssueComments(ctx, accessToken, owner, repo, number)
}
