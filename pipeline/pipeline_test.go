package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medblog/models"
)

type fakeSelector struct{ topic string }

func (f fakeSelector) Pick() string { return f.topic }

type fakeText struct {
	title    string
	body     string
	titleErr error
	bodyErr  error
}

func (f fakeText) GenerateTitle(ctx context.Context, topic string) (string, error) {
	return f.title, f.titleErr
}

func (f fakeText) GenerateBody(ctx context.Context, title string) (string, error) {
	return f.body, f.bodyErr
}

type fakeImage struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeImage) Generate(ctx context.Context, prompt string) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type fakeStore struct {
	bytesURL string
	bytesErr error
	urlURL   string
	urlErr   error

	uploadedURL    string
	uploadedFolder string
}

func (f *fakeStore) UploadBytes(ctx context.Context, data []byte, folder string) (string, error) {
	f.uploadedFolder = folder
	return f.bytesURL, f.bytesErr
}

func (f *fakeStore) UploadURL(ctx context.Context, url, folder string) (string, error) {
	f.uploadedURL = url
	f.uploadedFolder = folder
	return f.urlURL, f.urlErr
}

type fakePersist struct {
	inserted *models.Blog
	err      error
}

func (f *fakePersist) Insert(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = b
	return b, nil
}

func testConfig() Config {
	return Config{
		ImageFolder:         "generated-images",
		FallbackFolder:      "placeholders",
		PlaceholderImageURL: "https://placeholder.test/image.png",
	}
}

func TestRunHappyPath(t *testing.T) {
	image := &fakeImage{data: []byte("png-bytes")}
	store := &fakeStore{bytesURL: "https://cdn.test/generated.png"}
	persist := &fakePersist{}

	r := NewRunner(
		fakeSelector{topic: "  Cardiology "},
		fakeText{title: "Heart Health Basics", body: "Intro line.\nSecond line."},
		image, store, persist, testConfig(),
	)

	saved, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, persist.inserted)

	assert.Equal(t, "cardiology", saved.Topic)
	assert.Equal(t, "Heart Health Basics", saved.Title)
	assert.Equal(t, "https://cdn.test/generated.png", saved.ImageURL)
	assert.Equal(t, "generated-images", store.uploadedFolder)
}

func TestRunTitleFailureAbortsBeforeImageAndPersist(t *testing.T) {
	image := &fakeImage{}
	persist := &fakePersist{}
	titleErr := errors.New("model unavailable")

	r := NewRunner(
		fakeSelector{topic: "oncology"},
		fakeText{titleErr: titleErr},
		image, &fakeStore{}, persist, testConfig(),
	)

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, titleErr)
	assert.Zero(t, image.calls, "image generation must not run after a title failure")
	assert.Nil(t, persist.inserted, "nothing may be persisted after a title failure")
}

func TestRunBodyFailureAbortsRun(t *testing.T) {
	image := &fakeImage{}
	persist := &fakePersist{}
	bodyErr := errors.New("empty completion")

	r := NewRunner(
		fakeSelector{topic: "oncology"},
		fakeText{title: "A Title", bodyErr: bodyErr},
		image, &fakeStore{}, persist, testConfig(),
	)

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, bodyErr)
	assert.Zero(t, image.calls)
	assert.Nil(t, persist.inserted)
}

func TestRunImageFailureFallsBackToPlaceholder(t *testing.T) {
	image := &fakeImage{err: errors.New("synthesis failed")}
	store := &fakeStore{urlURL: "https://cdn.test/placeholder.png"}
	persist := &fakePersist{}

	r := NewRunner(
		fakeSelector{topic: "neurology"},
		fakeText{title: "A Title", body: "Body."},
		image, store, persist, testConfig(),
	)

	saved, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/placeholder.png", saved.ImageURL)
	assert.Equal(t, "https://placeholder.test/image.png", store.uploadedURL)
	assert.Equal(t, "placeholders", store.uploadedFolder)
}

func TestRunUploadFailureFallsBackToPlaceholder(t *testing.T) {
	image := &fakeImage{data: []byte("png-bytes")}
	store := &fakeStore{bytesErr: errors.New("upload rejected"), urlURL: "https://cdn.test/placeholder.png"}
	persist := &fakePersist{}

	r := NewRunner(
		fakeSelector{topic: "neurology"},
		fakeText{title: "A Title", body: "Body."},
		image, store, persist, testConfig(),
	)

	saved, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/placeholder.png", saved.ImageURL)
}

func TestRunBothImagePathsFailingStoresEmptyURL(t *testing.T) {
	image := &fakeImage{err: errors.New("synthesis failed")}
	store := &fakeStore{urlErr: errors.New("upload failed")}
	persist := &fakePersist{}

	r := NewRunner(
		fakeSelector{topic: "neurology"},
		fakeText{title: "A Title", body: "Body."},
		image, store, persist, testConfig(),
	)

	saved, err := r.Run(context.Background())
	require.NoError(t, err, "image failures must not abort the run")
	assert.Equal(t, "", saved.ImageURL)
	require.NotNil(t, persist.inserted)
}

func TestRunPersistFailurePropagates(t *testing.T) {
	persistErr := errors.New("write concern")
	r := NewRunner(
		fakeSelector{topic: "neurology"},
		fakeText{title: "A Title", body: "Body."},
		&fakeImage{data: []byte("x")}, &fakeStore{bytesURL: "u"}, &fakePersist{err: persistErr},
		testConfig(),
	)

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, persistErr)
}

func TestRunRejectsConcurrentRun(t *testing.T) {
	r := NewRunner(
		fakeSelector{topic: "neurology"},
		fakeText{title: "A Title", body: "Body."},
		&fakeImage{data: []byte("x")}, &fakeStore{bytesURL: "u"}, &fakePersist{},
		testConfig(),
	)

	r.running.Lock()
	_, err := r.Run(context.Background())
	r.running.Unlock()

	assert.ErrorIs(t, err, ErrRunInProgress)
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	image := &fakeImage{err: errors.New("synthesis failed")}
	store := &fakeStore{urlErr: errors.New("upload failed")}
	persist := &fakePersist{}

	r := NewRunner(
		fakeSelector{topic: "neurology"},
		fakeText{title: "A Title", body: "Body."},
		image, store, persist, testConfig(),
	)

	r.RunBatch(context.Background(), 3)
	assert.Equal(t, 3, image.calls, "every batch iteration must run")
}
