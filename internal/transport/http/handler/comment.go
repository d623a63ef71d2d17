package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gopherblog/internal/app"
	"gopherblog/internal/transport/http/middleware"
	"gopherblog/internal/transport/http/response"
)

type CommentHandler struct {
	commentService *app.CommentService
	logger         *zap.Logger
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewCommentHandler(commentService *app.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, logger: logger}
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(postID)
	if err != nil {
		h.logger.Error("list comments failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list comments failed")
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "comment content is required")
		return
	}

	comment, err := h.commentService.Create(userID, postID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		default:
			h.logger.Error("create comment failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create comment failed")
		}
		return
	}

	response.OK(c, gin.H{"id": comment.ID})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.Delete(userID, commentID); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrCommentNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		case errors.Is(err, app.ErrNotOwner):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
		default:
			h.logger.Error("delete comment failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete comment failed")
		}
		return
	}

	response.OK(c, gin.H{"deleted_comment_id": commentID})
}
