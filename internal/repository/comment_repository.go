package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

// CommentWithAuthor is the typed row shape for comment listings.
type CommentWithAuthor struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query comment by id failed: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) ListByPostID(postID uint) ([]CommentWithAuthor, error) {
	var rows []CommentWithAuthor
	if err := r.db.Model(&model.Comment{}).
		Select("comments.id, comments.post_id, comments.user_id, comments.content, comments.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	return rows, nil
}

func (r *CommentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Comment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}
	return nil
}
