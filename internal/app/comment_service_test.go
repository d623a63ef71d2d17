package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopherblog/internal/repository"
)

func TestCommentService_CreateAndList(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	postSvc := NewPostService(repository.NewPostRepository(db), repository.NewLikeRepository(db))
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))

	alice := createUserRow(t, db, "alice")
	post, err := postSvc.Create(alice.ID, PostInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	_, err = svc.Create(alice.ID, post.ID, "   ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(alice.ID, 999, "hello")
	require.ErrorIs(t, err, ErrPostNotFound)

	comment, err := svc.Create(alice.ID, post.ID, "  hello  ")
	require.NoError(t, err)
	require.Equal(t, "hello", comment.Content)

	comments, err := svc.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "alice", comments[0].Username)
}

func TestCommentService_DeleteOwnership(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	postSvc := NewPostService(repository.NewPostRepository(db), repository.NewLikeRepository(db))
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))

	alice := createUserRow(t, db, "alice")
	bob := createUserRow(t, db, "bob")
	post, err := postSvc.Create(alice.ID, PostInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	comment, err := svc.Create(bob.ID, post.ID, "bob's comment")
	require.NoError(t, err)

	// Even the post owner cannot delete someone else's comment.
	require.ErrorIs(t, svc.Delete(alice.ID, comment.ID), ErrNotOwner)
	require.NoError(t, svc.Delete(bob.ID, comment.ID))
	require.ErrorIs(t, svc.Delete(bob.ID, comment.ID), ErrCommentNotFound)
}
