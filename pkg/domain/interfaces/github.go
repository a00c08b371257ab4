package interfaces

import (
	"context"

	"github.com/m-mizutani/gitbot/pkg/domain/model"
)

// GitHubClientFactory builds a hosting API client for the API root an event came from
type GitHubClientFactory interface {
	NewClient(ctx context.Context, baseURL string) (GitHubClient, error)
}

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// Repository returns a handle for owner/name. It does not call the API.
	Repository(owner, name string) Repository
}

// Repository is the request-scoped handle the release pipeline mutates.
// Errors of missing resources carry types.ErrTagNotFound and rejected
// creations of existing refs carry types.ErrTagConflict.
type Repository interface {
	Issue(number int) Issue

	// GetFileContents returns decoded file content at the default branch tip
	GetFileContents(ctx context.Context, path string) ([]byte, error)

	// GetBranchSHA returns the commit SHA at the tip of a branch
	GetBranchSHA(ctx context.Context, branch string) (string, error)

	// CreateRef creates a fully qualified ref such as refs/heads/x
	CreateRef(ctx context.Context, ref, sha string) error

	// CreateFile commits a new file on branch and returns the commit SHA
	CreateFile(ctx context.Context, path, message string, content []byte, branch string) (string, error)

	// CreateTag creates an annotated tag object and returns its SHA
	CreateTag(ctx context.Context, req *model.TagRequest) (string, error)
}

// Issue is the comment stream of one issue
type Issue interface {
	// CreateComment posts a comment and returns its ID
	CreateComment(ctx context.Context, body string) (int64, error)
}
