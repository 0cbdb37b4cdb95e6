package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/api/metrics"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// ContentHandler serves the public catalog plus per-user favorites and
// download history.
type ContentHandler struct {
	contentService ports.ContentService
	themeService   ports.ThemeService
}

func NewContentHandler(contentService ports.ContentService, themeService ports.ThemeService) *ContentHandler {
	return &ContentHandler{contentService: contentService, themeService: themeService}
}

// Featured returns the homepage spotlight entry.
//
// @Summary      Featured content
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.Content
// @Failure      404  {object}  errorResponse
// @Router       /content/featured [get]
func (h *ContentHandler) Featured(c echo.Context) error {
	content, err := h.contentService.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}

// ByType lists catalog entries of one category.
//
// @Summary      Content by type
// @Tags         content
// @Produce      json
// @Param        type   path      string  true   "Content type"
// @Param        limit  query     int     false  "Maximum entries"
// @Success      200    {array}   domain.Content
// @Failure      400    {object}  errorResponse
// @Router       /content/type/{type} [get]
func (h *ContentHandler) ByType(c echo.Context) error {
	list, err := h.contentService.ByType(c.Request().Context(), c.Param("type"), queryLimit(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// ListVip lists VIP-only catalog entries.
//
// @Summary      VIP content
// @Tags         content
// @Produce      json
// @Param        limit  query    int  false  "Maximum entries"
// @Success      200    {array}  domain.Content
// @Router       /content/vip [get]
func (h *ContentHandler) ListVip(c echo.Context) error {
	list, err := h.contentService.ListVip(c.Request().Context(), queryLimit(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// ByID returns a single catalog entry. VIP-only entries require the caller
// to hold VIP or admin access.
//
// @Summary      Content by id
// @Tags         content
// @Produce      json
// @Param        id  path      string  true  "Content id"
// @Success      200  {object}  domain.Content
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /content/{id} [get]
func (h *ContentHandler) ByID(c echo.Context) error {
	content, err := h.contentService.ByID(c.Request().Context(), c.Param("id"), currentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}

// Search searches the catalog by title, description, and tags. URL queries
// match the source url instead.
//
// @Summary      Search content
// @Tags         content
// @Produce      json
// @Param        query  query     string  true   "Search query"
// @Param        type   query     string  false  "Content type filter"
// @Success      200    {array}   domain.Content
// @Failure      400    {object}  errorResponse
// @Router       /search [get]
func (h *ContentHandler) Search(c echo.Context) error {
	hits, err := h.contentService.Search(c.Request().Context(), c.QueryParam("query"), c.QueryParam("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hits)
}

// AddFavorite bookmarks a catalog entry for the caller.
//
// @Summary      Add favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        body  body      favoriteRequest  true  "Content to favorite"
// @Success      201   {object}  domain.Favorite
// @Failure      404   {object}  errorResponse
// @Router       /favorites [post]
func (h *ContentHandler) AddFavorite(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fav, err := h.contentService.AddFavorite(c.Request().Context(), user.ID, req.ContentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fav)
}

// RemoveFavorite removes a bookmark.
//
// @Summary      Remove favorite
// @Tags         favorites
// @Security     SessionAuth
// @Param        contentId  path  string  true  "Content id"
// @Success      204
// @Router       /favorites/{contentId} [delete]
func (h *ContentHandler) RemoveFavorite(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.contentService.RemoveFavorite(c.Request().Context(), user.ID, c.Param("contentId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListFavorites returns the caller's bookmarked content.
//
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Security     SessionAuth
// @Success      200  {array}  domain.Content
// @Router       /favorites [get]
func (h *ContentHandler) ListFavorites(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}
	list, err := h.contentService.ListFavorites(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// RecordDownload records that the caller fetched a catalog entry.
//
// @Summary      Record download
// @Tags         downloads
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        body  body      downloadRequest  true  "Content downloaded"
// @Success      201   {object}  domain.Download
// @Failure      404   {object}  errorResponse
// @Router       /downloads [post]
func (h *ContentHandler) RecordDownload(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}

	var req downloadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dl, err := h.contentService.RecordDownload(c.Request().Context(), user.ID, req.ContentID)
	if err != nil {
		return err
	}

	metrics.DownloadsRecordedTotal.Inc()
	return c.JSON(http.StatusCreated, dl)
}

// ListDownloads returns the caller's download history.
//
// @Summary      List downloads
// @Tags         downloads
// @Produce      json
// @Security     SessionAuth
// @Success      200  {array}  domain.Content
// @Router       /downloads [get]
func (h *ContentHandler) ListDownloads(c echo.Context) error {
	user, err := requireCurrentUser(c)
	if err != nil {
		return err
	}
	list, err := h.contentService.ListDownloads(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Theme returns the active site theme.
//
// @Summary      Active theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  domain.ThemeSettings
// @Failure      404  {object}  errorResponse
// @Router       /theme [get]
func (h *ContentHandler) Theme(c echo.Context) error {
	theme, err := h.themeService.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, theme)
}

func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}
