package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medblog/models"
)

type WriteRepository struct {
	col *mongo.Collection
}

func NewWriteRepository(db *mongo.Database) *WriteRepository {
	return &WriteRepository{col: db.Collection("writes")}
}

// Insert stores a user-authored post and returns it with its new id.
func (r *WriteRepository) Insert(ctx context.Context, w *models.Write) (*models.Write, error) {
	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, w)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		w.ID = oid
	}
	return w, nil
}

// FindByID returns one user-authored post by its ObjectID.
func (r *WriteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Write, error) {
	var w models.Write
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUser returns one author's posts, newest first.
func (r *WriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Write, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	writes := []models.Write{}
	if err := cur.All(ctx, &writes); err != nil {
		return nil, err
	}
	return writes, nil
}

// ListNewestFirst returns all user-authored posts sorted by created_at desc.
func (r *WriteRepository) ListNewestFirst(ctx context.Context) ([]models.Write, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	writes := []models.Write{}
	if err := cur.All(ctx, &writes); err != nil {
		return nil, err
	}
	return writes, nil
}

// FindByIDs returns the user-authored posts whose ids are in the given set.
func (r *WriteRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Write, error) {
	if len(ids) == 0 {
		return []models.Write{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	writes := []models.Write{}
	if err := cur.All(ctx, &writes); err != nil {
		return nil, err
	}
	return writes, nil
}
