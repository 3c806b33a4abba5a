package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Write represents a user-authored blog post submitted via the write form.
// Image holds either a local /uploads path or a remote URL.
// Collection: writes
type Write struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	UserID      string             `bson:"user_id" json:"userId"`
	Category    string             `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory" json:"subcategory"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Caption     string             `bson:"caption" json:"caption"`
}
