package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medblog/dto"
	"medblog/models"
)

// CommentStore is the slice of the comment repository CommentService needs.
type CommentStore interface {
	Insert(ctx context.Context, c *models.Comment) (*models.Comment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	ListByBlog(ctx context.Context, blogID primitive.ObjectID) ([]models.Comment, error)
}

// CommentService creates comments and assembles the read-time thread tree.
type CommentService struct {
	comments CommentStore
}

func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

// CommentInput is one comment submission. ParentID is empty for a root
// comment.
type CommentInput struct {
	BlogID   string
	ParentID string
	UserID   string
	Text     string
}

// Create stores a comment. A non-empty ParentID must reference an existing
// comment.
func (s *CommentService) Create(ctx context.Context, in CommentInput) (*models.Comment, error) {
	if in.BlogID == "" || in.UserID == "" || in.Text == "" {
		return nil, fmt.Errorf("%w: blogId, userId and text are required", ErrValidation)
	}
	blogID, err := primitive.ObjectIDFromHex(in.BlogID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid blogId", ErrValidation)
	}
	userID, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid userId", ErrValidation)
	}

	var parentID *primitive.ObjectID
	if in.ParentID != "" {
		pid, err := primitive.ObjectIDFromHex(in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid parentId", ErrValidation)
		}
		if _, err := s.comments.FindByID(ctx, pid); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fmt.Errorf("%w: parent comment not found", ErrValidation)
			}
			return nil, err
		}
		parentID = &pid
	}

	return s.comments.Insert(ctx, &models.Comment{
		BlogID:   blogID,
		ParentID: parentID,
		UserID:   userID,
		Text:     in.Text,
	})
}

// Thread returns the nested comment tree for one post.
func (s *CommentService) Thread(ctx context.Context, blogHexID string) ([]*dto.CommentNode, error) {
	blogID, err := primitive.ObjectIDFromHex(blogHexID)
	if err != nil {
		// an unparsable id cannot match any comment
		return []*dto.CommentNode{}, nil
	}

	comments, err := s.comments.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}

// BuildCommentTree assembles the flat comment list into a tree in two
// passes: index every node by id, then attach each node to its parent.
// Orphans (a parent deleted out from under its replies) surface as roots
// rather than disappearing. O(n).
func BuildCommentTree(comments []models.Comment) []*dto.CommentNode {
	byID := make(map[string]*dto.CommentNode, len(comments))
	nodes := make([]*dto.CommentNode, 0, len(comments))
	for _, c := range comments {
		node := &dto.CommentNode{
			ID:        c.ID.Hex(),
			BlogID:    c.BlogID.Hex(),
			UserID:    c.UserID.Hex(),
			Text:      c.Text,
			Likes:     c.Likes,
			Dislikes:  c.Dislikes,
			CreatedAt: c.CreatedAt,
			Replies:   []*dto.CommentNode{},
		}
		if c.ParentID != nil {
			node.ParentID = c.ParentID.Hex()
		}
		byID[node.ID] = node
		nodes = append(nodes, node)
	}

	roots := []*dto.CommentNode{}
	for _, node := range nodes {
		if node.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[node.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots
}
