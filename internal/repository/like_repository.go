package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Exists(postID, userID uint) (bool, error) {
	var like model.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("query like failed: %w", err)
	}
	return true, nil
}

func (r *LikeRepository) Create(postID, userID uint) error {
	if err := r.db.Create(&model.Like{PostID: postID, UserID: userID}).Error; err != nil {
		return fmt.Errorf("create like failed: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(postID, userID uint) error {
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.Like{}).Error; err != nil {
		return fmt.Errorf("delete like failed: %w", err)
	}
	return nil
}

func (r *LikeRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count likes failed: %w", err)
	}
	return count, nil
}
