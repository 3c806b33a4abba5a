package dto

import (
	"time"

	"medblog/models"
)

// UserProfile is the public account shape. It never carries the password
// hash or reset token.
type UserProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Bio        string    `json:"bio"`
	Role       string    `json:"role"`
	SavedBlogs []string  `json:"savedBlogs"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserProfileFromModel maps an account document to its public shape.
func UserProfileFromModel(u *models.User) UserProfile {
	saved := make([]string, 0, len(u.SavedBlogs))
	for _, id := range u.SavedBlogs {
		saved = append(saved, id.Hex())
	}
	return UserProfile{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Bio:        u.Bio,
		Role:       u.Role,
		SavedBlogs: saved,
		CreatedAt:  u.CreatedAt,
	}
}

// LoginResponse is the /login success body.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"_id"`
	Email  string `json:"email"`
}
