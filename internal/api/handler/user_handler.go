package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// UserHandler handles administrative user-directory operations and the
// agent portfolio endpoints.
type UserHandler struct {
	directory ports.DirectoryService
	auth      ports.AuthService
}

func NewUserHandler(directory ports.DirectoryService, auth ports.AuthService) *UserHandler {
	return &UserHandler{directory: directory, auth: auth}
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended pending"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type enrollClientRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	FullName     string `json:"full_name"     validate:"required"`
	TempPassword string `json:"temp_password" validate:"required,min=8"`
	Country      string `json:"country"`
	City         string `json:"city"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}

// List handles GET /v1/users.
//
// @Summary      List every account in the directory
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.directory.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// Approve handles POST /v1/users/:id/approve: pending to active.
//
// @Summary      Approve a pending account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/users/{id}/approve [post]
func (h *UserHandler) Approve(c echo.Context) error {
	user, err := h.directory.ApproveUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Toggle handles POST /v1/users/:id/toggle: flips active/suspended.
//
// @Summary      Toggle an account between active and suspended
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/users/{id}/toggle [post]
func (h *UserHandler) Toggle(c echo.Context) error {
	user, err := h.directory.ToggleActiveSuspended(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetStatus handles PATCH /v1/users/:id/status.
//
// @Summary      Set an account's lifecycle status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "User id"
// @Param        body  body      setStatusRequest  true  "Target status"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id}/status [patch]
func (h *UserHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.directory.SetStatus(c.Request().Context(), c.Param("id"), domain.AccountStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword handles PATCH /v1/users/:id/password. Callers may change
// their own password; super admins may change anyone's.
//
// @Summary      Change an account password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User id"
// @Param        body  body      changePasswordRequest  true  "New password"
// @Success      204   "password changed"
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if viewer.UserID != id && viewer.Role != domain.RoleAdminSuper {
		return domain.ErrForbidden
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.directory.ChangePassword(c.Request().Context(), id, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/users/:id. Deleting an unknown id still returns
// 204: the operation is idempotent.
//
// @Summary      Delete an account permanently
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204  "account removed"
// @Failure      403  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.directory.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMyClients handles GET /v1/agents/me/clients: the agent's portfolio.
//
// @Summary      List the clients enrolled by the calling agent
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/agents/me/clients [get]
func (h *UserHandler) ListMyClients(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	clients, err := h.directory.ListClientsOfAgent(c.Request().Context(), viewer.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: clients})
}

// EnrollClient handles POST /v1/agents/me/clients: registers a client on
// the agent's behalf. The account starts pending.
//
// @Summary      Enroll a client on behalf of the calling agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      enrollClientRequest  true  "Client details"
// @Success      201   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/agents/me/clients [post]
func (h *UserHandler) EnrollClient(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req enrollClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.EnrollClient(c.Request().Context(), viewer.UserID, ports.EnrollClientInput{
		Email:        req.Email,
		FullName:     req.FullName,
		TempPassword: req.TempPassword,
		Country:      req.Country,
		City:         req.City,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
