package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medblog/models"
)

type fakeWriteStore struct {
	inserted *models.Write
	byUser   map[string][]models.Write
}

func (f *fakeWriteStore) Insert(ctx context.Context, w *models.Write) (*models.Write, error) {
	w.ID = primitive.NewObjectID()
	f.inserted = w
	return w, nil
}

func (f *fakeWriteStore) ListByUser(ctx context.Context, userID string) ([]models.Write, error) {
	return f.byUser[userID], nil
}

type fakeResolver struct {
	enabled bool
	url     string
	err     error
	calls   int
}

func (f *fakeResolver) Enabled() bool { return f.enabled }

func (f *fakeResolver) GenerateIllustration(ctx context.Context, title string) (string, error) {
	f.calls++
	return f.url, f.err
}

func validWriteInput() WriteInput {
	return WriteInput{
		UserID:      primitive.NewObjectID().Hex(),
		Category:    "Wellness",
		Subcategory: "Nutrition",
		Title:       "Eating for Energy",
		Description: "A long-form description.",
		Caption:     "photo caption",
	}
}

func TestCreateWriteRequiresFields(t *testing.T) {
	svc := NewWriteService(&fakeWriteStore{}, &fakeResolver{})

	in := validWriteInput()
	in.Description = ""
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateWriteUploadedFileWins(t *testing.T) {
	store := &fakeWriteStore{}
	resolver := &fakeResolver{enabled: true, url: "https://replicate.test/out.png"}
	svc := NewWriteService(store, resolver)

	in := validWriteInput()
	in.UploadedImage = "/uploads/123-photo.png"

	saved, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/123-photo.png", saved.Image)
	assert.Zero(t, resolver.calls, "resolver must not run when a file was uploaded")
}

func TestCreateWriteUsesResolverWithoutFile(t *testing.T) {
	store := &fakeWriteStore{}
	resolver := &fakeResolver{enabled: true, url: "https://replicate.test/out.png"}
	svc := NewWriteService(store, resolver)

	saved, err := svc.Create(context.Background(), validWriteInput())
	require.NoError(t, err)

	assert.Equal(t, "https://replicate.test/out.png", saved.Image)
	assert.Equal(t, 1, resolver.calls)
}

func TestCreateWriteSkipsDisabledResolver(t *testing.T) {
	store := &fakeWriteStore{}
	resolver := &fakeResolver{enabled: false}
	svc := NewWriteService(store, resolver)

	saved, err := svc.Create(context.Background(), validWriteInput())
	require.NoError(t, err)

	assert.Equal(t, "", saved.Image)
	assert.Zero(t, resolver.calls)
}

func TestCreateWriteResolverFailureFailsSubmission(t *testing.T) {
	store := &fakeWriteStore{}
	resolverErr := errors.New("prediction timed out")
	svc := NewWriteService(store, &fakeResolver{enabled: true, err: resolverErr})

	_, err := svc.Create(context.Background(), validWriteInput())
	assert.ErrorIs(t, err, resolverErr)
	assert.Nil(t, store.inserted)
}

func TestListByUser(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	store := &fakeWriteStore{byUser: map[string][]models.Write{
		userID: {{Title: "first"}, {Title: "second"}},
	}}
	svc := NewWriteService(store, &fakeResolver{})

	got, err := svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
