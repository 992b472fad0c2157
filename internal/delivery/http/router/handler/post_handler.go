package handler

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the post creation request.
func (h *PostHandler) Create(c echo.Context) error {
	var input *usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Post created successfully")
}

// List returns all posts with their authors.
func (h *PostHandler) List(c echo.Context) error {
	views, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Posts retrieved successfully")
}

// GetByID returns a single post looked up by its numeric ID.
func (h *PostHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Post ID must be a number")
	}

	view, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Post retrieved successfully")
}

// Update applies a partial update to a post.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Post ID must be a number")
	}

	var input *usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Post updated successfully")
}

// Delete removes a post.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Post ID must be a number")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
