// Package driven defines the driven (outbound) ports of the application.
package driven

import (
	"context"

	"github.com/ericfisherdev/covercomment/internal/domain/model"
)

// CommentClient defines the driven port for the PR comment surface of the
// hosting service. Pull requests are modeled as issues by the underlying API,
// so all three operations address the Issues comment endpoints.
type CommentClient interface {
	// ListIssueComments returns all PR-level comments for the given pull
	// request, in the order the service returns them.
	ListIssueComments(ctx context.Context, repoFullName string, prNumber int) ([]model.IssueComment, error)

	// CreateIssueComment adds a new PR-level comment.
	CreateIssueComment(ctx context.Context, repoFullName string, prNumber int, body string) error

	// UpdateIssueComment replaces the body of an existing comment, addressed
	// by comment ID rather than PR number.
	UpdateIssueComment(ctx context.Context, repoFullName string, commentID int64, body string) error
}
