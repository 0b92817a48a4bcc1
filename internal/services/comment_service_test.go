package services

import (
	"context"
	"testing"

	"github.com/bookhive/backend/internal/models"
	"github.com/bookhive/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture() (*CommentService, *fakeBookRepo, *fakeCommentRepo, *fakeNotificationRepo) {
	bookRepo := newFakeBookRepo()
	commentRepo := newFakeCommentRepo()
	notificationRepo := newFakeNotificationRepo()
	service := NewCommentService(bookRepo, commentRepo, NewNotificationService(notificationRepo))
	return service, bookRepo, commentRepo, notificationRepo
}

func TestCreateComment_RootNotifiesBookAuthor(t *testing.T) {
	service, bookRepo, _, notificationRepo := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	created, err := service.Create(context.Background(), book.ID.Hex(), 2, "great summary", nil)
	require.NoError(t, err)
	assert.Equal(t, "great summary", created.Content)
	assert.Nil(t, created.ParentID)

	require.Len(t, notificationRepo.notifications, 1)
	notification := notificationRepo.notifications[0]
	assert.Equal(t, models.NotificationKindReply, notification.Kind)
	assert.Equal(t, uint(1), notification.RecipientID)
	assert.Equal(t, uint(2), notification.ActorID)
	assert.Equal(t, book.ID.Hex(), notification.BookID)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, created.ID, *notification.CommentID)
}

func TestCreateComment_ReplyNotifiesParentAuthor(t *testing.T) {
	service, bookRepo, _, notificationRepo := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	root, err := service.Create(context.Background(), book.ID.Hex(), 2, "great summary", nil)
	require.NoError(t, err)

	reply, err := service.Create(context.Background(), book.ID.Hex(), 3, "agreed", &root.ID)
	require.NoError(t, err)

	require.Len(t, notificationRepo.notifications, 2)
	notification := notificationRepo.notifications[1]
	assert.Equal(t, models.NotificationKindReply, notification.Kind)
	// Replies go to the parent comment's author, not the book's author.
	assert.Equal(t, uint(2), notification.RecipientID)
	assert.Equal(t, uint(3), notification.ActorID)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, reply.ID, *notification.CommentID)
}

func TestCreateComment_SelfCommentIsSilent(t *testing.T) {
	service, bookRepo, _, notificationRepo := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	_, err := service.Create(context.Background(), book.ID.Hex(), 1, "my own book", nil)
	require.NoError(t, err)
	assert.Empty(t, notificationRepo.notifications)
}

func TestCreateComment_SelfReplyIsSilent(t *testing.T) {
	service, bookRepo, _, notificationRepo := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	root, err := service.Create(context.Background(), book.ID.Hex(), 2, "great summary", nil)
	require.NoError(t, err)
	notificationRepo.notifications = nil

	_, err = service.Create(context.Background(), book.ID.Hex(), 2, "adding to my point", &root.ID)
	require.NoError(t, err)
	assert.Empty(t, notificationRepo.notifications)
}

func TestCreateComment_EmptyBody(t *testing.T) {
	service, bookRepo, commentRepo, _ := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := service.Create(context.Background(), book.ID.Hex(), 2, content, nil)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Empty(t, commentRepo.comments)
}

func TestCreateComment_TrimsBody(t *testing.T) {
	service, bookRepo, _, _ := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	created, err := service.Create(context.Background(), book.ID.Hex(), 2, "  nice  \n", nil)
	require.NoError(t, err)
	assert.Equal(t, "nice", created.Content)
}

func TestCreateComment_UnknownBook(t *testing.T) {
	service, _, _, _ := newCommentFixture()

	_, err := service.Create(context.Background(), "64a000000000000000000000", 2, "hello", nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCreateComment_UnknownParent(t *testing.T) {
	service, bookRepo, commentRepo, notificationRepo := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	missing := uint(42)
	_, err := service.Create(context.Background(), book.ID.Hex(), 2, "hello", &missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Empty(t, commentRepo.comments)
	assert.Empty(t, notificationRepo.notifications)
}

func TestCreateComment_ParentOnDifferentBook(t *testing.T) {
	service, bookRepo, _, notificationRepo := newCommentFixture()
	first := bookRepo.add(1, "Atomic Habits", nil)
	second := bookRepo.add(1, "Deep Work", nil)

	root, err := service.Create(context.Background(), first.ID.Hex(), 2, "great summary", nil)
	require.NoError(t, err)
	notificationRepo.notifications = nil

	_, err = service.Create(context.Background(), second.ID.Hex(), 3, "wrong thread", &root.ID)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, notificationRepo.notifications)
}

func TestGetTree_RootWithReply(t *testing.T) {
	service, bookRepo, _, _ := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	root, err := service.Create(context.Background(), book.ID.Hex(), 2, "great summary", nil)
	require.NoError(t, err)
	reply, err := service.Create(context.Background(), book.ID.Hex(), 3, "agreed", &root.ID)
	require.NoError(t, err)

	tree, err := service.GetTree(context.Background(), book.ID.Hex())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, reply.ID, tree[0].Replies[0].ID)
	assert.Empty(t, tree[0].Replies[0].Replies)
}

func TestGetTree_UnknownBook(t *testing.T) {
	service, _, _, _ := newCommentFixture()

	_, err := service.GetTree(context.Background(), "64a000000000000000000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetTree_EmptyBook(t *testing.T) {
	service, bookRepo, _, _ := newCommentFixture()
	book := bookRepo.add(1, "Atomic Habits", nil)

	tree, err := service.GetTree(context.Background(), book.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, tree)
}
