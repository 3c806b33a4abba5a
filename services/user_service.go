package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medblog/dto"
	"medblog/models"
)

// UserStore is the slice of the user repository UserService needs.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, bio string) error
	AddSavedBlog(ctx context.Context, userID, blogID primitive.ObjectID) error
	RemoveSavedBlog(ctx context.Context, userID, blogID primitive.ObjectID) error
}

// UserService owns profiles and the saved-posts list.
type UserService struct {
	users  UserStore
	blogs  BlogStore
	writes WriteStore
}

func NewUserService(users UserStore, blogs BlogStore, writes WriteStore) *UserService {
	return &UserService{users: users, blogs: blogs, writes: writes}
}

// GetProfile returns the public account shape.
func (s *UserService) GetProfile(ctx context.Context, hexID string) (dto.UserProfile, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return dto.UserProfile{}, ErrNotFound
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.UserProfile{}, ErrNotFound
		}
		return dto.UserProfile{}, err
	}
	return dto.UserProfileFromModel(user), nil
}

// UpdateProfile sets name and/or bio.
func (s *UserService) UpdateProfile(ctx context.Context, hexID, name, bio string) (dto.UserProfile, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return dto.UserProfile{}, ErrNotFound
	}
	if err := s.users.UpdateProfile(ctx, id, name, bio); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.UserProfile{}, ErrNotFound
		}
		return dto.UserProfile{}, err
	}
	return s.GetProfile(ctx, hexID)
}

// SaveBlog adds a post to the user's saved list. The post must exist
// (generated or user-authored); saving the same id twice keeps one entry.
func (s *UserService) SaveBlog(ctx context.Context, userHexID, blogHexID string) error {
	userID, err := primitive.ObjectIDFromHex(userHexID)
	if err != nil {
		return ErrNotFound
	}
	blogID, err := primitive.ObjectIDFromHex(blogHexID)
	if err != nil {
		return ErrNotFound
	}

	if err := s.postExists(ctx, blogID); err != nil {
		return err
	}

	if err := s.users.AddSavedBlog(ctx, userID, blogID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RemoveSavedBlog drops a post from the user's saved list.
func (s *UserService) RemoveSavedBlog(ctx context.Context, userHexID, blogHexID string) error {
	userID, err := primitive.ObjectIDFromHex(userHexID)
	if err != nil {
		return ErrNotFound
	}
	blogID, err := primitive.ObjectIDFromHex(blogHexID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.users.RemoveSavedBlog(ctx, userID, blogID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListSaved returns the user's saved posts in saved order, resolving each
// id against both post collections.
func (s *UserService) ListSaved(ctx context.Context, userHexID string) ([]dto.FeedItem, error) {
	userID, err := primitive.ObjectIDFromHex(userHexID)
	if err != nil {
		return nil, ErrNotFound
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	blogs, err := s.blogs.FindByIDs(ctx, user.SavedBlogs)
	if err != nil {
		return nil, err
	}
	writes, err := s.writes.FindByIDs(ctx, user.SavedBlogs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]dto.FeedItem, len(blogs)+len(writes))
	for _, b := range blogs {
		byID[b.ID.Hex()] = dto.FeedItemFromBlog(b)
	}
	for _, w := range writes {
		byID[w.ID.Hex()] = dto.FeedItemFromWrite(w)
	}

	items := make([]dto.FeedItem, 0, len(user.SavedBlogs))
	for _, id := range user.SavedBlogs {
		if item, ok := byID[id.Hex()]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *UserService) postExists(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.blogs.FindByID(ctx, id); err == nil {
		return nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if _, err := s.writes.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
