package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medblog/services"
)

// CreateWriteHandler godoc
// @Summary      Create a user-authored post
// @Description  Multipart form; the optional "image" file is stored under /uploads. Without a file, an illustration may be generated remotely.
// @Tags         writes
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  models.Write
// @Router       /write [post]
func CreateWriteHandler(svc *services.WriteService, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.WriteInput{
			UserID:      c.PostForm("userId"),
			Category:    c.PostForm("category"),
			Subcategory: c.PostForm("subcategory"),
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Caption:     c.PostForm("caption"),
		}

		if file, err := c.FormFile("image"); err == nil && file != nil {
			name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save blog"})
				return
			}
			in.UploadedImage = "/uploads/" + name
		}

		saved, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// ListMyBlogsHandler godoc
// @Summary      List a user's posts
// @Tags         writes
// @Param        userId  path  string  true  "author id"
// @Produce      json
// @Success      200  {array}  models.Write
// @Router       /my-blogs/{userId} [get]
func ListMyBlogsHandler(svc *services.WriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		writes, err := svc.ListByUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, writes)
	}
}
