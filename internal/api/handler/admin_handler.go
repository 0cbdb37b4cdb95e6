package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/api/metrics"
	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// AdminHandler serves the admin review surface: user directory management,
// VIP request decisions, and theme updates. All routes sit behind the admin
// gate in the router.
type AdminHandler struct {
	userService  ports.UserService
	vipService   ports.VipService
	themeService ports.ThemeService
}

func NewAdminHandler(userService ports.UserService, vipService ports.VipService, themeService ports.ThemeService) *AdminHandler {
	return &AdminHandler{userService: userService, vipService: vipService, themeService: themeService}
}

// ListUsers returns every account. Password hashes never serialize.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser applies a partial update to an account.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), id, ports.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		IsVip:    req.IsVip,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListVipRequests returns requests with the given status, oldest first.
//
// @Summary      List VIP requests
// @Tags         admin
// @Produce      json
// @Security     SessionAuth
// @Param        status  query     string  false  "Request status"  default(pending)
// @Success      200     {array}   domain.VipRequest
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /admin/vip-requests [get]
func (h *AdminHandler) ListVipRequests(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(domain.StatusPending)
	}

	requests, err := h.vipService.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// DecideVipRequest approves or rejects a pending request. Approving a
// user-linked request grants that user VIP access in the same operation.
//
// @Summary      Decide a VIP request
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        id    path      int                      true  "Request id"
// @Param        body  body      decideVipRequestRequest  true  "Decision"
// @Success      200   {object}  domain.VipRequest
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/vip-requests/{id} [patch]
func (h *AdminHandler) DecideVipRequest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req decideVipRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	decided, err := h.vipService.Decide(c.Request().Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyDecided) {
			metrics.VipDecideConflictsTotal.Inc()
		}
		return err
	}

	metrics.VipRequestsDecidedTotal.WithLabelValues(string(decided.Status)).Inc()
	return c.JSON(http.StatusOK, decided)
}

// UpdateTheme replaces the active site theme.
//
// @Summary      Update theme settings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        body  body      themeRequest  true  "Theme colors"
// @Success      200   {object}  domain.ThemeSettings
// @Failure      400   {object}  errorResponse
// @Router       /admin/theme [post]
func (h *AdminHandler) UpdateTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	theme, err := h.themeService.Replace(c.Request().Context(), &domain.ThemeSettings{
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		AccentColor:     req.AccentColor,
		BackgroundColor: req.BackgroundColor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, theme)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
