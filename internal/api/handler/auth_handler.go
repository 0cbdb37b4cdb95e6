package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/api/metrics"
	"github.com/monsterwith/monstermedia/internal/api/middleware"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// AuthHandler serves registration, login, logout, the current-user lookup,
// and VIP request submission.
type AuthHandler struct {
	authService ports.AuthService
	vipService  ports.VipService
}

func NewAuthHandler(authService ports.AuthService, vipService ports.VipService) *AuthHandler {
	return &AuthHandler{authService: authService, vipService: vipService}
}

// Register creates a new user account and opens a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SessionsIssuedTotal.Inc()
	setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.SessionsIssuedTotal.Inc()
	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout destroys the caller's session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return err
	}
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out successfully"})
}

// Me returns the authenticated caller's account.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// RequestVip submits a VIP access request. Works for both authenticated users
// and guests; an authenticated caller's request is linked to their account.
//
// @Summary      Submit a VIP request
// @Tags         vip
// @Accept       json
// @Produce      json
// @Param        body  body      vipRequestRequest  true  "VIP request details"
// @Success      201   {object}  vipRequestResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/request-vip [post]
func (h *AuthHandler) RequestVip(c echo.Context) error {
	var req vipRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.SubmitVipRequestInput{Email: req.Email, Reason: req.Reason}
	if user := currentUser(c); user != nil {
		in.UserID = &user.ID
		in.CallerID = &user.ID
	}

	created, err := h.vipService.Submit(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.VipRequestsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, vipRequestResponse{
		Message: "VIP request submitted successfully",
		Request: created,
	})
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
