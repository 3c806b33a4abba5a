package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"medblog/imagegen"
	"medblog/logger"
	"medblog/models"
	"medblog/topics"
)

// ErrRunInProgress is returned when a run is requested while another one
// still holds the single-slot guard.
var ErrRunInProgress = errors.New("pipeline: run already in progress")

// TopicSelector picks one topic per run.
type TopicSelector interface {
	Pick() string
}

// TextGenerator produces the mandatory text fields. A failure from either
// call hard-aborts the run.
type TextGenerator interface {
	GenerateTitle(ctx context.Context, topic string) (string, error)
	GenerateBody(ctx context.Context, title string) (string, error)
}

// ImageGenerator produces raw image bytes for a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// AssetStore uploads image bytes or a remote URL and returns a public URL.
type AssetStore interface {
	UploadBytes(ctx context.Context, data []byte, folder string) (string, error)
	UploadURL(ctx context.Context, url, folder string) (string, error)
}

// Persister writes the finished post.
type Persister interface {
	Insert(ctx context.Context, b *models.Blog) (*models.Blog, error)
}

// Config carries the non-collaborator settings of a Runner.
type Config struct {
	ImageFolder         string
	FallbackFolder      string
	PlaceholderImageURL string

	// RunTimeout bounds one full run including all remote calls.
	// Zero means the 5 minute default.
	RunTimeout time.Duration
}

// Runner orchestrates one post generation run:
// topic -> title -> body -> image (with placeholder fallback) -> persist.
//
// Title and body are mandatory: a failure there aborts the run and nothing
// is written. The image is enhancement only: synthesis failure falls back
// to uploading the placeholder, and if that also fails the post is stored
// with an empty image URL.
type Runner struct {
	selector TopicSelector
	text     TextGenerator
	image    ImageGenerator
	store    AssetStore
	persist  Persister
	cfg      Config

	running sync.Mutex
}

func NewRunner(selector TopicSelector, text TextGenerator, image ImageGenerator, store AssetStore, persist Persister, cfg Config) *Runner {
	if cfg.RunTimeout == 0 {
		cfg.RunTimeout = 5 * time.Minute
	}
	return &Runner{
		selector: selector,
		text:     text,
		image:    image,
		store:    store,
		persist:  persist,
		cfg:      cfg,
	}
}

// Run executes one pipeline run. A second Run while one is in flight
// returns ErrRunInProgress instead of queueing; the scheduler may fire
// faster than a run completes.
func (r *Runner) Run(ctx context.Context) (*models.Blog, error) {
	if !r.running.TryLock() {
		logger.Log.Warn("pipeline run skipped: previous run still in progress")
		return nil, ErrRunInProgress
	}
	defer r.running.Unlock()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.RunTimeout)
	defer cancel()

	start := time.Now()

	topic := r.selector.Pick()

	title, err := r.text.GenerateTitle(ctx, topic)
	if err != nil {
		logger.ErrorWithFields("pipeline aborted: title generation failed", logger.Fields{
			"topic": topic,
			"error": err.Error(),
		})
		return nil, err
	}

	content, err := r.text.GenerateBody(ctx, title)
	if err != nil {
		logger.ErrorWithFields("pipeline aborted: body generation failed", logger.Fields{
			"topic": topic,
			"title": title,
			"error": err.Error(),
		})
		return nil, err
	}

	imageURL := r.resolveImage(ctx, title, content)

	blog := &models.Blog{
		Topic:    topics.Normalize(topic),
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}
	saved, err := r.persist.Insert(ctx, blog)
	if err != nil {
		logger.ErrorWithFields("pipeline failed: could not persist post", logger.Fields{
			"topic": blog.Topic,
			"title": title,
			"error": err.Error(),
		})
		return nil, err
	}

	logger.InfoWithFields("pipeline run complete", logger.Fields{
		"blog_id":     saved.ID.Hex(),
		"topic":       saved.Topic,
		"has_image":   saved.ImageURL != "",
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return saved, nil
}

// resolveImage tries synthesis first, then the placeholder upload. Both
// failing degrades to "" rather than aborting the run.
func (r *Runner) resolveImage(ctx context.Context, title, content string) string {
	prompt := imagegen.ComposePrompt(title, content)

	data, err := r.image.Generate(ctx, prompt)
	if err == nil {
		url, upErr := r.store.UploadBytes(ctx, data, r.cfg.ImageFolder)
		if upErr == nil {
			return url
		}
		err = upErr
	}
	logger.WarnWithFields("image generation failed, using placeholder", logger.Fields{
		"title": title,
		"error": err.Error(),
	})

	url, err := r.store.UploadURL(ctx, r.cfg.PlaceholderImageURL, r.cfg.FallbackFolder)
	if err != nil {
		logger.ErrorWithFields("placeholder upload failed, post will have no image", logger.Fields{
			"title": title,
			"error": err.Error(),
		})
		return ""
	}
	return url
}

// RunBatch performs n sequential runs. Each failure is logged on its own
// and never stops the remaining iterations.
func (r *Runner) RunBatch(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		if _, err := r.Run(ctx); err != nil {
			logger.ErrorWithFields("batch iteration failed", logger.Fields{
				"iteration": i + 1,
				"of":        n,
				"error":     err.Error(),
			})
			continue
		}
		logger.Log.Infof("batch iteration %d/%d generated a post", i+1, n)
	}
}
