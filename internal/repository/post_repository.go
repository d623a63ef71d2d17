package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

// PostWithMeta is the typed row shape for listings: the post columns plus
// the joined author name and the aggregated like count.
type PostWithMeta struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Likes     int64     `json:"likes"`
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) Update(id uint, title, content, excerpt string) error {
	updates := map[string]interface{}{
		"title":   title,
		"content": content,
		"excerpt": excerpt,
	}
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

// DeleteCascade removes the post together with its likes and comments in a
// single transaction so a partial failure cannot orphan dependent rows.
func (r *PostRepository) DeleteCascade(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}

const postWithMetaSelect = "posts.id, posts.user_id, posts.title, posts.content, posts.excerpt, posts.created_at, users.username, COUNT(likes.id) AS likes"

func (r *PostRepository) listQuery() *gorm.DB {
	return r.db.Model(&model.Post{}).
		Select(postWithMetaSelect).
		Joins("LEFT JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id")
}

func (r *PostRepository) List(limit, offset int) ([]PostWithMeta, error) {
	var rows []PostWithMeta
	if err := r.listQuery().
		Order("posts.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return rows, nil
}

func (r *PostRepository) ListRecent(limit int) ([]PostWithMeta, error) {
	var rows []PostWithMeta
	if err := r.listQuery().
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list recent posts failed: %w", err)
	}
	return rows, nil
}

func (r *PostRepository) ListHot(limit int) ([]PostWithMeta, error) {
	var rows []PostWithMeta
	if err := r.listQuery().
		Order("likes DESC, posts.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list hot posts failed: %w", err)
	}
	return rows, nil
}

func (r *PostRepository) ListByUserID(userID uint) ([]PostWithMeta, error) {
	var rows []PostWithMeta
	if err := r.listQuery().
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list posts by user failed: %w", err)
	}
	return rows, nil
}

// GetWithMeta returns a single post in listing shape, or (nil, nil) when the
// post does not exist.
func (r *PostRepository) GetWithMeta(id uint) (*PostWithMeta, error) {
	var rows []PostWithMeta
	if err := r.listQuery().
		Where("posts.id = ?", id).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query post with meta failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
