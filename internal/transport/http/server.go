package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "gopherblog/internal/app"
	"gopherblog/internal/bootstrap"
	"gopherblog/internal/repository"
	"gopherblog/internal/transport/http/handler"
	"gopherblog/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(app.Logger), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	commentRepo := repository.NewCommentRepository(app.DB)
	likeRepo := repository.NewLikeRepository(app.DB)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.SessionTTLHour)*time.Hour,
		app.Config.Auth.BcryptCost,
	)
	postService := appsvc.NewPostService(postRepo, likeRepo)
	commentService := appsvc.NewCommentService(commentRepo, postRepo)

	authHandler := handler.NewAuthHandler(authService, app.Config.IsProd(), app.Logger)
	postHandler := handler.NewPostHandler(postService, app.Logger)
	commentHandler := handler.NewCommentHandler(commentService, app.Logger)

	secret := app.Config.Auth.JWTSecret
	requireAuth := middleware.RequireAuth(secret)
	optionalAuth := middleware.OptionalAuth(secret)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", requireAuth, authHandler.Me)
	authGroup.PUT("/change-password", requireAuth, authHandler.ChangePassword)
	authGroup.PUT("/update-profile", requireAuth, authHandler.UpdateProfile)

	postGroup := v1.Group("/posts")
	postGroup.GET("", postHandler.List)
	postGroup.GET("/recent", postHandler.Recent)
	postGroup.GET("/hot", postHandler.Hot)
	postGroup.GET("/my-posts", requireAuth, postHandler.MyPosts)
	postGroup.GET("/:id", optionalAuth, postHandler.View)
	postGroup.POST("", requireAuth, postHandler.Create)
	postGroup.PUT("/:id", requireAuth, postHandler.Update)
	postGroup.DELETE("/:id", requireAuth, postHandler.Delete)
	postGroup.POST("/:id/like", requireAuth, postHandler.ToggleLike)

	commentGroup := v1.Group("/comments")
	commentGroup.GET("/:postId", commentHandler.ListByPost)
	commentGroup.POST("/:postId", requireAuth, commentHandler.Create)
	commentGroup.DELETE("/:postId/:commentId", requireAuth, commentHandler.Delete)

	return router
}
