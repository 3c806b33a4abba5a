package services

import (
	"context"
	"fmt"

	"medblog/logger"
	"medblog/models"
)

// IllustrationResolver generates an image URL for posts submitted without a
// file. It is the bounded-polling prediction client in production.
type IllustrationResolver interface {
	Enabled() bool
	GenerateIllustration(ctx context.Context, title string) (string, error)
}

// WriteInserter is the slice of the user-post repository WriteService needs.
type WriteInserter interface {
	Insert(ctx context.Context, w *models.Write) (*models.Write, error)
	ListByUser(ctx context.Context, userID string) ([]models.Write, error)
}

// WriteInput is one write-form submission. UploadedImage is the local
// /uploads path of a file the user attached, or "" when none was sent.
type WriteInput struct {
	UserID        string
	Category      string
	Subcategory   string
	Title         string
	Description   string
	Caption       string
	UploadedImage string
}

// WriteService creates and lists user-authored posts.
type WriteService struct {
	writes   WriteInserter
	resolver IllustrationResolver
}

func NewWriteService(writes WriteInserter, resolver IllustrationResolver) *WriteService {
	return &WriteService{writes: writes, resolver: resolver}
}

// Create stores a user-authored post. An uploaded file always wins; the
// remote illustration API is only consulted when no file was sent and the
// resolver is configured. An illustration failure fails the submission,
// matching the write form's contract.
func (s *WriteService) Create(ctx context.Context, in WriteInput) (*models.Write, error) {
	if in.Category == "" || in.Subcategory == "" || in.Title == "" || in.Description == "" || in.UserID == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	image := in.UploadedImage
	if image == "" && s.resolver != nil && s.resolver.Enabled() {
		url, err := s.resolver.GenerateIllustration(ctx, in.Title)
		if err != nil {
			logger.ErrorWithFields("illustration generation failed", logger.Fields{
				"title": in.Title,
				"error": err.Error(),
			})
			return nil, err
		}
		image = url
	}

	return s.writes.Insert(ctx, &models.Write{
		UserID:      in.UserID,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Title:       in.Title,
		Description: in.Description,
		Caption:     in.Caption,
		Image:       image,
	})
}

// ListByUser returns one author's posts, newest first.
func (s *WriteService) ListByUser(ctx context.Context, userID string) ([]models.Write, error) {
	return s.writes.ListByUser(ctx, userID)
}
