package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"medblog/auth"
	"medblog/models"
)

// bcryptCost matches the work factor the accounts were originally hashed
// with, so existing hashes keep verifying.
const bcryptCost = 10

const resetTokenTTL = time.Hour

// AuthUserStore is the slice of the user repository AuthService needs.
type AuthUserStore interface {
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

// ResetMailer sends the password reset mail.
type ResetMailer interface {
	SendPasswordReset(to, resetURL string) error
}

// AuthService owns registration, login and the password reset flow.
type AuthService struct {
	users  AuthUserStore
	jwt    *auth.JWTManager
	mailer ResetMailer
}

func NewAuthService(users AuthUserStore, jwt *auth.JWTManager, mailer ResetMailer) *AuthService {
	return &AuthService{users: users, jwt: jwt, mailer: mailer}
}

// Register creates an account. A reused email fails with ErrDuplicateEmail
// and writes nothing.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.users.Insert(ctx, &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	})
}

// Login verifies credentials and issues a bearer token with
// {userId, email} claims valid for one hour.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword stores a fresh reset token on the account and mails the
// reset link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	var raw [20]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return err
	}
	token := hex.EncodeToString(raw[:])

	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:3000"
	}
	resetURL := fmt.Sprintf("%s/reset-password/%s", clientURL, token)
	return s.mailer.SendPasswordReset(email, resetURL)
}

// ResetPassword completes the flow: an unexpired token replaces the
// password hash and the token is cleared.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hashed))
}
