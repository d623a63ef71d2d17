package app

import (
	"errors"
	"strings"

	"gopherblog/internal/model"
	"gopherblog/internal/repository"
)

const (
	defaultListLimit = 12
	maxListLimit     = 100
	frontPageLimit   = 5
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("not the resource owner")
)

type PostService struct {
	postRepo *repository.PostRepository
	likeRepo *repository.LikeRepository
}

type PostInput struct {
	Title   string
	Content string
	Excerpt string
}

// PostView is a single post with its like count and the viewer's like state.
type PostView struct {
	repository.PostWithMeta
	IsLiked bool `json:"is_liked"`
}

type LikeResult struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"is_liked"`
}

func NewPostService(postRepo *repository.PostRepository, likeRepo *repository.LikeRepository) *PostService {
	return &PostService{postRepo: postRepo, likeRepo: likeRepo}
}

func (s *PostService) Create(userID uint, input PostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if userID == 0 || title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	post := &model.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
		Excerpt: strings.TrimSpace(input.Excerpt),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Update(userID, postID uint, input PostInput) error {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return ErrInvalidInput
	}

	if err := s.requireOwner(userID, postID); err != nil {
		return err
	}
	return s.postRepo.Update(postID, title, content, strings.TrimSpace(input.Excerpt))
}

func (s *PostService) Delete(userID, postID uint) error {
	if err := s.requireOwner(userID, postID); err != nil {
		return err
	}
	return s.postRepo.DeleteCascade(postID)
}

// requireOwner distinguishes a missing post from a post owned by someone
// else; handlers map the two to 404 and 403 respectively. The check-then-act
// window under a concurrent delete is accepted: the follow-up mutation then
// affects zero rows.
func (s *PostService) requireOwner(userID, postID uint) error {
	if userID == 0 || postID == 0 {
		return ErrInvalidInput
	}
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

func (s *PostService) List(limit, offset int) ([]repository.PostWithMeta, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.List(limit, offset)
}

func (s *PostService) Recent() ([]repository.PostWithMeta, error) {
	return s.postRepo.ListRecent(frontPageLimit)
}

func (s *PostService) Hot() ([]repository.PostWithMeta, error) {
	return s.postRepo.ListHot(frontPageLimit)
}

func (s *PostService) MyPosts(userID uint) ([]repository.PostWithMeta, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.postRepo.ListByUserID(userID)
}

// GetView returns a post for display. viewerID 0 means anonymous: the post
// is still returned, only IsLiked stays false.
func (s *PostService) GetView(postID, viewerID uint) (*PostView, error) {
	if postID == 0 {
		return nil, ErrInvalidInput
	}
	row, err := s.postRepo.GetWithMeta(postID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrPostNotFound
	}

	view := &PostView{PostWithMeta: *row}
	if viewerID != 0 {
		liked, err := s.likeRepo.Exists(postID, viewerID)
		if err != nil {
			return nil, err
		}
		view.IsLiked = liked
	}
	return view, nil
}

// ToggleLike flips the (post, user) membership row. It requires only an
// authenticated caller, not ownership of the post.
func (s *PostService) ToggleLike(userID, postID uint) (*LikeResult, error) {
	if userID == 0 || postID == 0 {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	liked, err := s.likeRepo.Exists(postID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		if err := s.likeRepo.Delete(postID, userID); err != nil {
			return nil, err
		}
	} else {
		if err := s.likeRepo.Create(postID, userID); err != nil {
			return nil, err
		}
	}

	count, err := s.likeRepo.CountByPostID(postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Likes: count, IsLiked: !liked}, nil
}
