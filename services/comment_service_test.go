package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medblog/models"
)

type fakeCommentStore struct {
	byID     map[primitive.ObjectID]*models.Comment
	inserted *models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{byID: map[primitive.ObjectID]*models.Comment{}}
}

func (f *fakeCommentStore) Insert(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	c.ID = primitive.NewObjectID()
	f.byID[c.ID] = c
	f.inserted = c
	return c, nil
}

func (f *fakeCommentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (f *fakeCommentStore) ListByBlog(ctx context.Context, blogID primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.byID {
		if c.BlogID == blogID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func TestCreateCommentRequiresFields(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	_, err := svc.Create(context.Background(), CommentInput{BlogID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCommentRejectsInvalidIDs(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	_, err := svc.Create(context.Background(), CommentInput{
		BlogID: "not-a-hex-id",
		UserID: primitive.NewObjectID().Hex(),
		Text:   "hello",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCommentRejectsMissingParent(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	_, err := svc.Create(context.Background(), CommentInput{
		BlogID:   primitive.NewObjectID().Hex(),
		UserID:   primitive.NewObjectID().Hex(),
		ParentID: primitive.NewObjectID().Hex(),
		Text:     "orphan reply",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateReplyToExistingComment(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)
	blogID := primitive.NewObjectID()

	root, err := svc.Create(context.Background(), CommentInput{
		BlogID: blogID.Hex(),
		UserID: primitive.NewObjectID().Hex(),
		Text:   "root",
	})
	require.NoError(t, err)

	reply, err := svc.Create(context.Background(), CommentInput{
		BlogID:   blogID.Hex(),
		UserID:   primitive.NewObjectID().Hex(),
		ParentID: root.ID.Hex(),
		Text:     "reply",
	})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)
}

func TestThreadInvalidBlogIDIsEmptyTree(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	tree, err := svc.Thread(context.Background(), "not-a-hex-id")
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestThreadReturnsNestedComments(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)
	blogID := primitive.NewObjectID()

	root, err := svc.Create(context.Background(), CommentInput{
		BlogID: blogID.Hex(),
		UserID: primitive.NewObjectID().Hex(),
		Text:   "root",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CommentInput{
		BlogID:   blogID.Hex(),
		UserID:   primitive.NewObjectID().Hex(),
		ParentID: root.ID.Hex(),
		Text:     "reply",
	})
	require.NoError(t, err)

	tree, err := svc.Thread(context.Background(), blogID.Hex())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "reply", tree[0].Replies[0].Text)
}

func TestBuildCommentTreeNestsReplies(t *testing.T) {
	blogID := primitive.NewObjectID()
	rootID := primitive.NewObjectID()
	childID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	comments := []models.Comment{
		{ID: rootID, BlogID: blogID, UserID: userID, Text: "root"},
		{ID: childID, BlogID: blogID, UserID: userID, ParentID: &rootID, Text: "child"},
		{ID: primitive.NewObjectID(), BlogID: blogID, UserID: userID, ParentID: &childID, Text: "grandchild"},
	}

	tree := BuildCommentTree(comments)

	require.Len(t, tree, 1)
	assert.Equal(t, "root", tree[0].Text)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "child", tree[0].Replies[0].Text)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, "grandchild", tree[0].Replies[0].Replies[0].Text)
}

func TestBuildCommentTreeOrphansBecomeRoots(t *testing.T) {
	blogID := primitive.NewObjectID()
	deletedParent := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	comments := []models.Comment{
		{ID: primitive.NewObjectID(), BlogID: blogID, UserID: userID, Text: "root"},
		{ID: primitive.NewObjectID(), BlogID: blogID, UserID: userID, ParentID: &deletedParent, Text: "orphan"},
	}

	tree := BuildCommentTree(comments)
	assert.Len(t, tree, 2)
}

func TestBuildCommentTreeEmptyInput(t *testing.T) {
	assert.Empty(t, BuildCommentTree(nil))
}
