package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medblog/services"
)

type createCommentRequest struct {
	BlogID   string `json:"blogId" binding:"required"`
	ParentID string `json:"parentId"`
	UserID   string `json:"userId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// CreateCommentHandler godoc
// @Summary      Create a comment or reply
// @Description  parentId, when present, must reference an existing comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Comment
// @Router       /comments [post]
func CreateCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		comment, err := svc.Create(c.Request.Context(), services.CommentInput{
			BlogID:   req.BlogID,
			ParentID: req.ParentID,
			UserID:   req.UserID,
			Text:     req.Text,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

// GetCommentThreadHandler godoc
// @Summary      Nested comment tree for one post
// @Tags         comments
// @Param        blogId  path  string  true  "post id"
// @Produce      json
// @Success      200  {array}  dto.CommentNode
// @Router       /comments/{blogId} [get]
func GetCommentThreadHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tree, err := svc.Thread(c.Request.Context(), c.Param("blogId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tree)
	}
}
