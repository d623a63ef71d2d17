package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopherblog/internal/model"
)

func TestPostRepository_ListJoinsAuthorAndLikeCount(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "first")

	require.NoError(t, likeRepo.Create(post.ID, alice.ID))
	require.NoError(t, likeRepo.Create(post.ID, bob.ID))

	rows, err := repo.List(12, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, post.ID, rows[0].ID)
	require.Equal(t, "alice", rows[0].Username)
	require.Equal(t, int64(2), rows[0].Likes)
}

func TestPostRepository_ListHotOrdersByLikes(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	quiet := createTestPost(t, db, alice.ID, "quiet")
	popular := createTestPost(t, db, alice.ID, "popular")

	require.NoError(t, likeRepo.Create(popular.ID, alice.ID))
	require.NoError(t, likeRepo.Create(popular.ID, bob.ID))
	require.NoError(t, likeRepo.Create(quiet.ID, bob.ID))

	rows, err := repo.ListHot(5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, popular.ID, rows[0].ID)
	require.Equal(t, int64(2), rows[0].Likes)
	require.Equal(t, quiet.ID, rows[1].ID)
}

func TestPostRepository_GetWithMeta_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPostRepository(db)

	row, err := repo.GetWithMeta(999)
	require.NoError(t, err)
	require.Nil(t, row)
}

func TestPostRepository_DeleteCascadeRemovesLikesAndComments(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)
	commentRepo := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "doomed")
	require.NoError(t, likeRepo.Create(post.ID, alice.ID))
	require.NoError(t, commentRepo.Create(&model.Comment{PostID: post.ID, UserID: alice.ID, Content: "hi"}))

	require.NoError(t, repo.DeleteCascade(post.ID))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := likeRepo.CountByPostID(post.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	comments, err := commentRepo.ListByPostID(post.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}

func TestLikeRepository_UniquePairToggle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	likeRepo := NewLikeRepository(db)

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "p")

	exists, err := likeRepo.Exists(post.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, likeRepo.Create(post.ID, alice.ID))
	exists, err = likeRepo.Exists(post.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, exists)

	// The (post, user) pair is unique.
	require.Error(t, likeRepo.Create(post.ID, alice.ID))

	require.NoError(t, likeRepo.Delete(post.ID, alice.ID))
	exists, err = likeRepo.Exists(post.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, exists)
}
