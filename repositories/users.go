package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medblog/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert stores a new account and returns it with its new id.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Bio == "" {
		u.Bio = models.DefaultBio
	}
	if u.SavedBlogs == nil {
		u.SavedBlogs = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

// FindByEmail returns an account by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns an account by its ObjectID.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile sets name and bio.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, bio string) error {
	set := bson.M{"updated_at": time.Now()}
	if name != "" {
		set["name"] = name
	}
	if bio != "" {
		set["bio"] = bio
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddSavedBlog adds a post id to the saved set. $addToSet makes saving the
// same id twice a no-op.
func (r *UserRepository) AddSavedBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, userID, bson.M{
		"$addToSet": bson.M{"saved_blogs": blogID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// RemoveSavedBlog removes a post id from the saved set.
func (r *UserRepository) RemoveSavedBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, userID, bson.M{
		"$pull": bson.M{"saved_blogs": blogID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetResetToken stores a password reset token and its expiry.
func (r *UserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"reset_password_token":   token,
		"reset_password_expires": expires,
		"updated_at":             time.Now(),
	}})
	return err
}

// FindByResetToken returns the account holding an unexpired reset token.
func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	filter := bson.M{
		"reset_password_token":   token,
		"reset_password_expires": bson.M{"$gt": time.Now()},
	}
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the password hash and clears any reset token.
func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"password":   passwordHash,
			"updated_at": time.Now(),
		},
		"$unset": bson.M{
			"reset_password_token":   "",
			"reset_password_expires": "",
		},
	})
	return err
}
