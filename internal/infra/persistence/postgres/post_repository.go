package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post with its author preloaded.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).Preload("Author").First(&postM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}
		if isUndefinedTable(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("posts table missing")
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindAll retrieves every post with its author, in store order.
func (repo *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).Preload("Author").Find(&postMs).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("posts table missing")
		}

		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts, nil
}

// Create persists a new post entity and loads its author association.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidAuthor.WrapMessage("author does not exist")
		}
		if isUndefinedTable(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("posts table missing")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	var authorM model.UserModel
	if err := repo.db.WithContext(ctx).First(&authorM, postM.AuthorID).Error; err == nil {
		post.Author = toUserDomain(&authorM)
	}

	return nil
}

// Update modifies an existing post entity.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Save(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidAuthor.WrapMessage("author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes the post with the given ID.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		AuthorID:  data.AuthorID,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
// The author association is deliberately left off writes; AuthorID is the
// source of truth and the FK arbitrates validity.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		AuthorID:  data.AuthorID,
		// Preserved on Save, which writes every column. Zero on inserts,
		// where gorm fills it in.
		CreatedAt: data.CreatedAt,
	}
}
