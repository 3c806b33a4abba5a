package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account.
// Password is always a bcrypt hash. SavedBlogs is a set of post ids
// (generated or user-authored) maintained with $addToSet.
// Collection: users
type User struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CreatedAt            time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time            `bson:"updated_at" json:"updated_at"`
	Name                 string               `bson:"name" json:"name"`
	Email                string               `bson:"email" json:"email"`
	Password             string               `bson:"password" json:"-"`
	Bio                  string               `bson:"bio" json:"bio"`
	Role                 string               `bson:"role" json:"role"`
	SavedBlogs           []primitive.ObjectID `bson:"saved_blogs" json:"savedBlogs"`
	ResetPasswordToken   string               `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpires *time.Time           `bson:"reset_password_expires,omitempty" json:"-"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultBio matches the onboarding placeholder shown to new accounts.
const DefaultBio = "Tell me about your self"
