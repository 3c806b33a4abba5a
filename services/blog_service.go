package services

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medblog/dto"
	"medblog/models"
)

// BlogStore is the slice of the generated-post repository BlogService needs.
type BlogStore interface {
	ListNewestFirst(ctx context.Context) ([]models.Blog, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Blog, error)
}

// WriteStore is the slice of the user-post repository BlogService needs.
type WriteStore interface {
	ListNewestFirst(ctx context.Context) ([]models.Write, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Write, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Write, error)
}

// BlogService serves read paths over generated and user-authored posts.
type BlogService struct {
	blogs  BlogStore
	writes WriteStore
}

func NewBlogService(blogs BlogStore, writes WriteStore) *BlogService {
	return &BlogService{blogs: blogs, writes: writes}
}

// ListGenerated returns all generated posts, newest first.
func (s *BlogService) ListGenerated(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.ListNewestFirst(ctx)
}

// GetByID resolves an id against generated posts first, then user-authored
// ones, mirroring the single /blogs/:id endpoint serving both kinds.
func (s *BlogService) GetByID(ctx context.Context, hexID string) (dto.FeedItem, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return dto.FeedItem{}, ErrNotFound
	}

	if b, err := s.blogs.FindByID(ctx, id); err == nil {
		return dto.FeedItemFromBlog(*b), nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return dto.FeedItem{}, err
	}

	w, err := s.writes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.FeedItem{}, ErrNotFound
		}
		return dto.FeedItem{}, err
	}
	return dto.FeedItemFromWrite(*w), nil
}

// ListAll merges generated and user-authored posts, newest first.
func (s *BlogService) ListAll(ctx context.Context) ([]dto.FeedItem, error) {
	blogs, err := s.blogs.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	writes, err := s.writes.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedItem, 0, len(blogs)+len(writes))
	for _, b := range blogs {
		items = append(items, dto.FeedItemFromBlog(b))
	}
	for _, w := range writes {
		items = append(items, dto.FeedItemFromWrite(w))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
