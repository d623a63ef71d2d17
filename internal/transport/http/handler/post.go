package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gopherblog/internal/app"
	"gopherblog/internal/transport/http/middleware"
	"gopherblog/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
	logger      *zap.Logger
}

type PostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt" binding:"max=300"`
}

func NewPostHandler(postService *app.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

func (h *PostHandler) List(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 12)
	offset := parseIntQuery(c, "offset", 0)

	posts, err := h.postService.List(limit, offset)
	if err != nil {
		h.logger.Error("list posts failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list posts failed")
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) Recent(c *gin.Context) {
	posts, err := h.postService.Recent()
	if err != nil {
		h.logger.Error("list recent posts failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list recent posts failed")
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) Hot(c *gin.Context) {
	posts, err := h.postService.Hot()
	if err != nil {
		h.logger.Error("list hot posts failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list hot posts failed")
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) MyPosts(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	posts, err := h.postService.MyPosts(userID)
	if err != nil {
		h.logger.Error("list my posts failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list posts failed")
		return
	}
	response.OK(c, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "title and content are required")
		return
	}

	post, err := h.postService.Create(userID, app.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Excerpt: req.Excerpt,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			h.logger.Error("create post failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create post failed")
		}
		return
	}

	response.OK(c, gin.H{"id": post.ID})
}

// View is viewer-aware: anonymous callers get the post with is_liked false.
func (h *PostHandler) View(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	viewerID, _ := middleware.UserID(c)
	view, err := h.postService.GetView(postID, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			h.logger.Error("fetch post failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch post failed")
		}
		return
	}

	response.OK(c, view)
}

func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "title and content are required")
		return
	}

	err := h.postService.Update(userID, postID, app.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Excerpt: req.Excerpt,
	})
	if err != nil {
		h.writeMutationError(c, err, "update post failed")
		return
	}

	response.OK(c, gin.H{"message": "post updated"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(userID, postID); err != nil {
		h.writeMutationError(c, err, "delete post failed")
		return
	}

	response.OK(c, gin.H{"deleted_post_id": postID})
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.postService.ToggleLike(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			h.logger.Error("toggle like failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "toggle like failed")
		}
		return
	}

	response.OK(c, result)
}

// writeMutationError keeps the 403/404 split: a missing resource is not the
// same failure as an authenticated non-owner.
func (h *PostHandler) writeMutationError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, app.ErrNotOwner):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	default:
		h.logger.Error(internalMsg, zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, internalMsg)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id64), true
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
