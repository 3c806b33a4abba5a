package services

import (
	"context"
	"fmt"

	"medblog/models"
)

// ContactStore is the slice of the contact repository ContactService needs.
type ContactStore interface {
	Insert(ctx context.Context, c *models.Contact) (*models.Contact, error)
}

// ContactService stores contact-form messages.
type ContactService struct {
	contacts ContactStore
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create validates and stores one contact message.
func (s *ContactService) Create(ctx context.Context, name, email, message string) (*models.Contact, error) {
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}
	return s.contacts.Insert(ctx, &models.Contact{
		Name:    name,
		Email:   email,
		Message: message,
	})
}
