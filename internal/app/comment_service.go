package app

import (
	"errors"
	"strings"

	"gopherblog/internal/model"
	"gopherblog/internal/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, postRepo *repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) ListByPost(postID uint) ([]repository.CommentWithAuthor, error) {
	if postID == 0 {
		return nil, ErrInvalidInput
	}
	return s.commentRepo.ListByPostID(postID)
}

func (s *CommentService) Create(userID, postID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if userID == 0 || postID == 0 || content == "" {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment after verifying the caller authored it. Only the
// comment's owner may delete it, regardless of who owns the post.
func (s *CommentService) Delete(userID, commentID uint) error {
	if userID == 0 || commentID == 0 {
		return ErrInvalidInput
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotOwner
	}
	return s.commentRepo.Delete(commentID)
}
