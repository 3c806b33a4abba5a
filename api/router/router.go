package router

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"medblog/api/handlers"
	"medblog/api/middleware"
	"medblog/auth"
	"medblog/db"
	_ "medblog/docs"
	"medblog/services"
)

// Deps carries the wired services the route table depends on.
type Deps struct {
	JWT      *auth.JWTManager
	Auth     *services.AuthService
	Blogs    *services.BlogService
	Writes   *services.WriteService
	Comments *services.CommentService
	Users    *services.UserService
	Contacts *services.ContactService

	// UploadDir is where user-submitted images are stored and served from.
	UploadDir string

	// ClientDist optionally points at a built frontend bundle; unknown GET
	// paths then fall back to its index.html.
	ClientDist string
}

// New builds the gin engine with the full route table. The returned
// handler wraps the engine with permissive CORS for the browser client.
func New(deps Deps) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Generated and user-authored content
	r.GET("/blogs", handlers.ListBlogsHandler(deps.Blogs))
	r.GET("/blogs/:id", handlers.GetBlogHandler(deps.Blogs))
	r.GET("/all-blogs", handlers.ListAllBlogsHandler(deps.Blogs))
	r.POST("/write", handlers.CreateWriteHandler(deps.Writes, deps.UploadDir))
	r.GET("/my-blogs/:userId", handlers.ListMyBlogsHandler(deps.Writes))

	// Accounts
	r.POST("/register", handlers.RegisterHandler(deps.Auth))
	r.POST("/login", handlers.LoginHandler(deps.Auth))
	r.POST("/forgot-password", handlers.ForgotPasswordHandler(deps.Auth))
	r.POST("/reset-password/:token", handlers.ResetPasswordHandler(deps.Auth))

	// Profiles and saved lists
	r.GET("/profile/:id", handlers.GetProfileHandler(deps.Users))
	r.GET("/saved-blogs/:userId", handlers.ListSavedBlogsHandler(deps.Users))

	authed := r.Group("/", middleware.RequireAuth(deps.JWT))
	{
		authed.PATCH("/profile/:id", handlers.UpdateProfileHandler(deps.Users))
		authed.POST("/save-blog", handlers.SaveBlogHandler(deps.Users))
		authed.DELETE("/remove-saved-blog", handlers.RemoveSavedBlogHandler(deps.Users))
		authed.POST("/comments", handlers.CreateCommentHandler(deps.Comments))
	}

	// Comments are readable without a session
	r.GET("/comments/:blogId", handlers.GetCommentThreadHandler(deps.Comments))

	r.POST("/contact", handlers.CreateContactHandler(deps.Contacts))

	// User-submitted images
	r.Static("/uploads", deps.UploadDir)

	// SPA fallback: unknown paths serve the client bundle when one is
	// deployed alongside the API.
	r.NoRoute(func(c *gin.Context) {
		if deps.ClientDist != "" && c.Request.Method == http.MethodGet {
			index := filepath.Join(deps.ClientDist, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)
}
