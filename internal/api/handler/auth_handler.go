package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/api/metrics"
	"github.com/casabierta/realty-api/internal/api/middleware"
	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// AuthHandler handles account registration, session login/logout and the
// admin role-change endpoint.
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	cookie      middleware.SessionCookie
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, cookie: cookie}
}

// Register creates a new account with the default public role.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login verifies credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	credential, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// A missing account and a wrong password look identical to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			err = domain.ErrInvalidCredentials
		}
		return err
	}

	h.cookie.Set(c, credential)
	metrics.SessionsIssuedTotal.Inc()

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout revokes all outstanding credentials for the caller and clears the
// session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), identity.UID); err != nil {
		return err
	}

	h.cookie.Clear(c)
	metrics.SessionsRevokedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me returns the caller's resolved identity. Unlike the session middleware,
// this endpoint confirms the credential against the revocation list, so a
// logged-out session reads as invalid here even before the JWT expires.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(h.cookie.Name)
	if err != nil || cookie.Value == "" {
		return domain.ErrUnauthenticated
	}

	identity, err := h.sessions.Verify(c.Request().Context(), cookie.Value, true)
	if err != nil {
		h.cookie.Clear(c)
		return err
	}

	return c.JSON(http.StatusOK, identityResponse{UID: identity.UID, Role: identity.Role})
}

// ChangeRole sets another user's role. Only admins reach this handler via the
// route middleware, but the service re-checks the actor's role so the guard
// does not depend on routing configuration alone.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        uid   path      string             true  "Target user id"
// @Param        body  body      changeRoleRequest  true  "New role (premium or admin)"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/users/{uid}/role [put]
func (h *AuthHandler) ChangeRole(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRole
	}

	targetUID := c.Param("uid")
	if err := h.authService.ChangeRole(c.Request().Context(), actor, targetUID, req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		UID:   u.UID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
