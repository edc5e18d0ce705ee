package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/covercomment/internal/application"
	"github.com/ericfisherdev/covercomment/internal/domain/model"
	"github.com/ericfisherdev/covercomment/internal/domain/port/driven"
)

// fakeCommentClient implements driven.CommentClient in memory, recording writes.
type fakeCommentClient struct {
	comments []model.IssueComment
	listErr  error

	created   []string
	createErr error

	updated   map[int64]string
	updateErr error
}

var _ driven.CommentClient = (*fakeCommentClient)(nil)

func (f *fakeCommentClient) ListIssueComments(ctx context.Context, repo string, prNumber int) ([]model.IssueComment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.comments, nil
}

func (f *fakeCommentClient) CreateIssueComment(ctx context.Context, repo string, prNumber int, body string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, body)
	return nil
}

func (f *fakeCommentClient) UpdateIssueComment(ctx context.Context, repo string, commentID int64, body string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = map[int64]string{}
	}
	f.updated[commentID] = body
	return nil
}

const marker = "Go Test Coverage Report"

func TestFindExisting_FirstBotCommentWithMarker(t *testing.T) {
	fake := &fakeCommentClient{comments: []model.IssueComment{
		// Human comment containing the marker is ignored.
		{ID: 1, Author: "alice", Body: "look at the " + marker, IsBot: false},
		// Bot comment without the marker is ignored.
		{ID: 2, Author: "dependabot[bot]", Body: "bump deps", IsBot: true},
		{ID: 3, Author: "github-actions[bot]", Body: "## 🟢 " + marker, IsBot: true},
		{ID: 4, Author: "github-actions[bot]", Body: "## 🟡 " + marker, IsBot: true},
	}}
	svc := application.NewCommentService(fake)

	got := svc.FindExisting(context.Background(), "org/repo", 7)
	assert.Equal(t, int64(3), got)
}

func TestFindExisting_NoMatch(t *testing.T) {
	fake := &fakeCommentClient{comments: []model.IssueComment{
		{ID: 1, Author: "alice", Body: "lgtm", IsBot: false},
	}}
	svc := application.NewCommentService(fake)

	assert.Zero(t, svc.FindExisting(context.Background(), "org/repo", 7))
}

func TestFindExisting_EmptyList(t *testing.T) {
	svc := application.NewCommentService(&fakeCommentClient{})
	assert.Zero(t, svc.FindExisting(context.Background(), "org/repo", 7))
}

func TestFindExisting_ListError(t *testing.T) {
	fake := &fakeCommentClient{listErr: errors.New("network down")}
	svc := application.NewCommentService(fake)

	assert.Zero(t, svc.FindExisting(context.Background(), "org/repo", 7))
}

func TestUpsert_CreatesWhenNoneFound(t *testing.T) {
	fake := &fakeCommentClient{}
	svc := application.NewCommentService(fake)

	err := svc.Upsert(context.Background(), "org/repo", 7, "new body")

	require.NoError(t, err)
	require.Len(t, fake.created, 1)
	assert.Equal(t, "new body", fake.created[0])
	assert.Empty(t, fake.updated)
}

func TestUpsert_UpdatesExisting(t *testing.T) {
	fake := &fakeCommentClient{comments: []model.IssueComment{
		{ID: 42, Author: "github-actions[bot]", Body: "## 🟠 " + marker, IsBot: true},
	}}
	svc := application.NewCommentService(fake)

	err := svc.Upsert(context.Background(), "org/repo", 7, "replacement body")

	require.NoError(t, err)
	assert.Empty(t, fake.created)
	assert.Equal(t, map[int64]string{42: "replacement body"}, fake.updated)
}

func TestUpsert_ListErrorFallsBackToCreate(t *testing.T) {
	fake := &fakeCommentClient{listErr: errors.New("network down")}
	svc := application.NewCommentService(fake)

	err := svc.Upsert(context.Background(), "org/repo", 7, "body")

	require.NoError(t, err)
	require.Len(t, fake.created, 1)
}

func TestUpsert_CreateErrorSurfaces(t *testing.T) {
	writeErr := errors.New("403 forbidden")
	fake := &fakeCommentClient{createErr: writeErr}
	svc := application.NewCommentService(fake)

	err := svc.Upsert(context.Background(), "org/repo", 7, "body")
	assert.ErrorIs(t, err, writeErr)
}

func TestUpsert_UpdateErrorSurfaces(t *testing.T) {
	writeErr := errors.New("500 server error")
	fake := &fakeCommentClient{
		comments:  []model.IssueComment{{ID: 42, Body: marker, IsBot: true}},
		updateErr: writeErr,
	}
	svc := application.NewCommentService(fake)

	err := svc.Upsert(context.Background(), "org/repo", 7, "body")
	assert.ErrorIs(t, err, writeErr)
}
