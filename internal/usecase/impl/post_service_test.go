package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.PostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	t.Helper()

	postRepo := &mockRepo.PostRepository{}
	factory := &mockRepo.RepositoryFactory{}
	factory.On("PostRepo").Return(postRepo).Maybe()
	txManager := &mockRepo.TransactionManager{Factory: factory}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(txManager, postRepo, logger)

	return postServiceFixtures{
		service:  service,
		postRepo: postRepo,
	}
}

func TestPostService_Create_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		Title:    "First Post",
		Content:  "This is the first post content",
		AuthorID: 1,
	}

	fx.postRepo.On("Create", ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(args mock.Arguments) {
			post := args.Get(1).(*entity.Post)
			post.ID = 10
			post.Author = &entity.User{ID: 1, Email: "john@example.com", Name: "John Doe"}
		}).
		Return(nil)

	view, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), view.ID)
	assert.Equal(t, input.Title, view.Title)
	assert.False(t, view.Published)
	require.NotNil(t, view.Author)
	assert.Equal(t, int64(1), view.Author.ID)
}

func TestPostService_Create_UnknownAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		Title:    "Ghost Post",
		Content:  "Written by nobody in particular",
		AuthorID: 999,
	}

	fx.postRepo.On("Create", ctx, mock.AnythingOfType("*entity.Post")).
		Return(domainerrors.ErrInvalidAuthor)

	view, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAuthor))
}

func TestPostService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with author", func(t *testing.T) {
		fx := createTestPostService(t)
		post := &entity.Post{
			ID:       4,
			Title:    "Some Post",
			Content:  "Some content for the post",
			AuthorID: 2,
			Author:   &entity.User{ID: 2, Email: "jane@example.com", Name: "Jane Smith"},
		}
		fx.postRepo.On("FindByID", ctx, int64(4)).Return(post, nil)

		view, err := fx.service.GetByID(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), view.ID)
		require.NotNil(t, view.Author)
		assert.Equal(t, "jane@example.com", view.Author.Email)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.On("FindByID", ctx, int64(4)).Return(nil, repository.ErrPostNotFound)

		view, err := fx.service.GetByID(ctx, 4)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})
}

func TestPostService_List(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	posts := []*entity.Post{
		{ID: 1, Title: "First Post", AuthorID: 1, Author: &entity.User{ID: 1}},
		{ID: 2, Title: "Second Post", AuthorID: 2, Author: &entity.User{ID: 2}},
	}
	fx.postRepo.On("FindAll", ctx).Return(posts, nil)

	views, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "First Post", views[0].Title)
	assert.Equal(t, "Second Post", views[1].Title)
}

func TestPostService_Update_PartialFields(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	existing := &entity.Post{
		ID:        6,
		Title:     "Old Title",
		Content:   "Old content that is long enough",
		Published: false,
		AuthorID:  1,
	}
	published := true

	fx.postRepo.On("FindByID", ctx, int64(6)).Return(existing, nil)
	fx.postRepo.On("Update", ctx, mock.MatchedBy(func(post *entity.Post) bool {
		return post.ID == 6 && post.Published && post.Title == "Old Title"
	})).Return(nil)

	view, err := fx.service.Update(ctx, 6, &usecase.UpdatePostInput{
		Published: &published,
	})

	require.NoError(t, err)
	assert.True(t, view.Published)
	assert.Equal(t, "Old Title", view.Title)
	fx.postRepo.AssertExpectations(t)
}

func TestPostService_Update_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.On("FindByID", ctx, int64(6)).Return(nil, repository.ErrPostNotFound)

	view, err := fx.service.Update(ctx, 6, &usecase.UpdatePostInput{})

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.On("Delete", ctx, int64(8)).Return(nil)

		err := fx.service.Delete(ctx, 8)

		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestPostService(t)
		fx.postRepo.On("Delete", ctx, int64(8)).Return(repository.ErrPostNotFound)

		err := fx.service.Delete(ctx, 8)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})
}
