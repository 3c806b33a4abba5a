package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medblog/services"
)

type savedBlogRequest struct {
	UserID string `json:"userId" binding:"required"`
	BlogID string `json:"blogId" binding:"required"`
}

type updateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// GetProfileHandler godoc
// @Summary      Read a profile
// @Tags         users
// @Param        id  path  string  true  "user id"
// @Produce      json
// @Success      200  {object}  dto.UserProfile
// @Router       /profile/{id} [get]
func GetProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.GetProfile(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler godoc
// @Summary      Update name/bio
// @Tags         users
// @Param        id  path  string  true  "user id"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.UserProfile
// @Router       /profile/{id} [patch]
func UpdateProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		profile, err := svc.UpdateProfile(c.Request.Context(), c.Param("id"), req.Name, req.Bio)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// SaveBlogHandler godoc
// @Summary      Save a post to the user's list
// @Description  Saving the same post twice keeps a single entry
// @Tags         users
// @Accept       json
// @Produce      json
// @Router       /save-blog [post]
func SaveBlogHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req savedBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.SaveBlog(c.Request.Context(), req.UserID, req.BlogID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog saved"})
	}
}

// RemoveSavedBlogHandler godoc
// @Summary      Remove a post from the user's saved list
// @Tags         users
// @Accept       json
// @Produce      json
// @Router       /remove-saved-blog [delete]
func RemoveSavedBlogHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req savedBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.RemoveSavedBlog(c.Request.Context(), req.UserID, req.BlogID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog removed from saved list"})
	}
}

// ListSavedBlogsHandler godoc
// @Summary      List the user's saved posts
// @Tags         users
// @Param        userId  path  string  true  "user id"
// @Produce      json
// @Success      200  {array}  dto.FeedItem
// @Router       /saved-blogs/{userId} [get]
func ListSavedBlogsHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListSaved(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
