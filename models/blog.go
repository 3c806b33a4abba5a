package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a generated blog post produced by the automated pipeline.
// Title and Content are always non-empty; ImageURL may be "" when both the
// image synthesis and the placeholder upload failed.
// Collection: blogs
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Topic     string             `bson:"topic" json:"topic"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	ImageURL  string             `bson:"image_url" json:"imageUrl"`
}
