package impl

import (
	"context"
	"log/slog"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	postRepo repository.PostRepository,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// Create persists a post. Author validity is arbitrated by the store's
// foreign key; a bad author surfaces as InvalidAuthor.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*usecase.PostView, error) {
	srv.logger.Info("Creating post", "authorID", input.AuthorID)

	post := &entity.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.logger.Warn("Post creation failed", "authorID", input.AuthorID, "error", err.Error())

		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Post created", "postID", post.ID)

	return usecase.NewPostView(post), nil
}

// GetByID returns a post with its author.
func (srv *postService) GetByID(ctx context.Context, id int64) (*usecase.PostView, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound.WrapMessage("get post failed")
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return usecase.NewPostView(post), nil
}

// List returns every post with its author, in store order.
func (srv *postService) List(ctx context.Context) ([]*usecase.PostView, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, usecase.NewPostView(post))
	}

	return views, nil
}

// Update applies a partial update inside a transaction so the read-modify-write
// cannot interleave with a concurrent update of the same post.
func (srv *postService) Update(ctx context.Context, id int64, input *usecase.UpdatePostInput) (*usecase.PostView, error) {
	srv.logger.Info("Updating post", "postID", id)

	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("update failed")
			}

			return errors.Wrap(err, "failed to find post for update")
		}

		if input.Title != nil {
			post.Title = *input.Title
		}
		if input.Content != nil {
			post.Content = *input.Content
		}
		if input.Published != nil {
			post.Published = *input.Published
		}

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.WithStack(err)
		}
		updated = post

		return nil
	})

	if err != nil {
		srv.logger.Warn("Post update failed", "postID", id, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Post updated", "postID", id)

	return usecase.NewPostView(updated), nil
}

// Delete removes the post.
func (srv *postService) Delete(ctx context.Context, id int64) error {
	srv.logger.Info("Deleting post", "postID", id)

	if err := srv.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound.WrapMessage("delete failed")
		}

		return errors.WithStack(err)
	}
	srv.logger.Debug("Post deleted", "postID", id)

	return nil
}
