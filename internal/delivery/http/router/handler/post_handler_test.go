package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "quill/internal/domain/errors"
	mockUC "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPostHandlerTest() (*echo.Echo, *mockUC.PostUsecase) {
	uc := &mockUC.PostUsecase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPostHandler(uc, logger)

	e := newTestEcho()
	e.POST("/api/posts", h.Create)
	e.GET("/api/posts", h.List)
	e.GET("/api/posts/:id", h.GetByID)
	e.PUT("/api/posts/:id", h.Update)
	e.DELETE("/api/posts/:id", h.Delete)

	return e, uc
}

func TestPostHandler_Create_Success(t *testing.T) {
	e, uc := newPostHandlerTest()

	uc.On("Create", mock.Anything, mock.MatchedBy(func(input *usecase.CreatePostInput) bool {
		return input.Title == "First Post" && input.AuthorID == 1
	})).Return(&usecase.PostView{
		ID:      10,
		Title:   "First Post",
		Content: "This is the first post content",
		Author:  &usecase.AccountView{ID: 1, Email: "john@example.com"},
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/posts",
		`{"title":"First Post","content":"This is the first post content","authorId":1}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"First Post"`)
	assert.Contains(t, rec.Body.String(), `"john@example.com"`)
}

func TestPostHandler_Create_TitleTooShort(t *testing.T) {
	e, uc := newPostHandlerTest()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/posts",
		`{"title":"ab","content":"This is the first post content","authorId":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostHandler_Create_ContentTooShort(t *testing.T) {
	e, uc := newPostHandlerTest()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/posts",
		`{"title":"First Post","content":"short","authorId":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostHandler_Create_UnknownAuthor(t *testing.T) {
	e, uc := newPostHandlerTest()

	uc.On("Create", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidAuthor)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/posts",
		`{"title":"Ghost Post","content":"Written by nobody in particular","authorId":999}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_AUTHOR")
}

func TestPostHandler_List(t *testing.T) {
	e, uc := newPostHandlerTest()

	uc.On("List", mock.Anything).Return([]*usecase.PostView{
		{ID: 1, Title: "First Post", Author: &usecase.AccountView{ID: 1}},
		{ID: 2, Title: "Second Post", Author: &usecase.AccountView{ID: 2}},
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First Post")
	assert.Contains(t, rec.Body.String(), "Second Post")
}

func TestPostHandler_GetByID_NotFound(t *testing.T) {
	e, uc := newPostHandlerTest()

	uc.On("GetByID", mock.Anything, int64(99)).
		Return(nil, domainerrors.ErrPostNotFound)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POST_NOT_FOUND")
}

func TestPostHandler_Update_TogglePublished(t *testing.T) {
	e, uc := newPostHandlerTest()

	uc.On("Update", mock.Anything, int64(6), mock.MatchedBy(func(input *usecase.UpdatePostInput) bool {
		return input.Published != nil && *input.Published && input.Title == nil
	})).Return(&usecase.PostView{ID: 6, Title: "Old Title", Published: true}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/api/posts/6", `{"published":true}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"published":true`)
}

func TestPostHandler_Delete_NoContent(t *testing.T) {
	e, uc := newPostHandlerTest()

	uc.On("Delete", mock.Anything, int64(8)).Return(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/posts/8", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
