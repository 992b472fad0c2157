// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Account registered successfully")
}

// Login handles the login request and returns a signed access token.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// List returns every registered account.
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Accounts retrieved successfully")
}

// GetByID returns a single account looked up by its numeric ID.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Account ID must be a number")
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewAccountView(user), "Account retrieved successfully")
}

// Update applies a partial update to an account.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Account ID must be a number")
	}

	var input *usecase.UpdateAccountInput
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

	return response.Success(c, http.StatusOK, view, "Account updated successfully")
}

// Delete removes an account. The usecase hands back the deleted record for
// logging; the HTTP surface answers with no body.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Account ID must be a number")
	}

	user, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	h.logger.Info("Account deleted", "userID", user.ID, "email", user.Email)

	return response.NoContent(c)
}

// Profile returns the account of the caller identified by the access token.
func (h *UserHandler) Profile(c echo.Context) error {
	accountID, ok := c.Get("accountID").(int64)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	user, err := h.uc.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewAccountView(user), "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// parseIDParam reads the :id path parameter as an int64.
func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
