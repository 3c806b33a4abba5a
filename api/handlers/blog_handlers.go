package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medblog/services"
)

// ListBlogsHandler godoc
// @Summary      List generated posts
// @Description  All AI-generated posts, newest first
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  models.Blog
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.ListGenerated(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error fetching blogs"})
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// GetBlogHandler godoc
// @Summary      Get one post by id
// @Description  Resolves against generated posts first, then user-authored ones
// @Tags         blogs
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.FeedItem
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// ListAllBlogsHandler godoc
// @Summary      Merged feed
// @Description  Generated and user-authored posts merged, newest first
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  dto.FeedItem
// @Router       /all-blogs [get]
func ListAllBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
