// Package application contains the orchestration between the report formatter
// and the GitHub comment surface.
package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ericfisherdev/covercomment/internal/domain/port/driven"
	"github.com/ericfisherdev/covercomment/internal/report"
)

// CommentService maintains the single coverage comment on a pull request:
// it locates a prior bot-authored report and either replaces its body or
// creates a fresh comment.
type CommentService struct {
	client driven.CommentClient
}

// NewCommentService creates a CommentService backed by the given client.
func NewCommentService(client driven.CommentClient) *CommentService {
	return &CommentService{client: client}
}

// FindExisting returns the ID of the first comment on the PR authored by a
// bot-type account whose body contains the report title, or 0 when no such
// comment exists. A failed list request is logged and treated as "not found"
// so the run continues and falls back to creating a new comment.
func (s *CommentService) FindExisting(ctx context.Context, repoFullName string, prNumber int) int64 {
	comments, err := s.client.ListIssueComments(ctx, repoFullName, prNumber)
	if err != nil {
		slog.Error("fetching comments failed, will create a new comment", "repo", repoFullName, "pr", prNumber, "error", err)
		return 0
	}

	for _, c := range comments {
		if c.IsBot && strings.Contains(c.Body, report.Title) {
			return c.ID
		}
	}

	return 0
}

// Upsert posts the body as the PR's coverage comment: it updates the existing
// coverage comment when one is found, otherwise it creates a new one. The
// body fully replaces any previous content; no merging takes place. Exactly
// one write is attempted, its error is returned unmodified.
func (s *CommentService) Upsert(ctx context.Context, repoFullName string, prNumber int, body string) error {
	if existingID := s.FindExisting(ctx, repoFullName, prNumber); existingID != 0 {
		slog.Info("found existing coverage comment, updating", "comment_id", existingID)
		if err := s.client.UpdateIssueComment(ctx, repoFullName, existingID, body); err != nil {
			return err
		}
		slog.Info("coverage comment updated", "repo", repoFullName, "pr", prNumber, "comment_id", existingID)
		return nil
	}

	slog.Info("no existing coverage comment found, creating new one")
	if err := s.client.CreateIssueComment(ctx, repoFullName, prNumber, body); err != nil {
		return err
	}
	slog.Info("coverage comment posted", "repo", repoFullName, "pr", prNumber)
	return nil
}
