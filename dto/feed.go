package dto

import (
	"time"

	"medblog/models"
)

// Post kinds in merged feeds.
const (
	KindGenerated = "generated"
	KindUser      = "user"
)

// FeedItem is the public shape shared by generated and user-authored posts
// in merged listings (/all-blogs, /saved-blogs).
type FeedItem struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Topic       string    `json:"topic,omitempty"`
	Content     string    `json:"content,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	Category    string    `json:"category,omitempty"`
	Subcategory string    `json:"subcategory,omitempty"`
	Description string    `json:"description,omitempty"`
	Caption     string    `json:"caption,omitempty"`
}

// FeedItemFromBlog maps a generated post into the merged feed shape.
func FeedItemFromBlog(b models.Blog) FeedItem {
	return FeedItem{
		ID:        b.ID.Hex(),
		Kind:      KindGenerated,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt,
		Topic:     b.Topic,
		Content:   b.Content,
	}
}

// FeedItemFromWrite maps a user-authored post into the merged feed shape.
func FeedItemFromWrite(w models.Write) FeedItem {
	return FeedItem{
		ID:          w.ID.Hex(),
		Kind:        KindUser,
		Title:       w.Title,
		ImageURL:    w.Image,
		CreatedAt:   w.CreatedAt,
		UserID:      w.UserID,
		Category:    w.Category,
		Subcategory: w.Subcategory,
		Description: w.Description,
		Caption:     w.Caption,
	}
}
