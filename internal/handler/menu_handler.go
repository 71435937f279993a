package handler

import (
	"net/http"

	"app/internal/menu"

	"github.com/labstack/echo/v4"
)

// /menu の公開API
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.list)
}

func (h *MenuHandler) list(c echo.Context) error {
	category := menu.Category(c.QueryParam("category"))
	if category == "" {
		category = menu.CategoryAll
	}

	tags := menu.TagFilter{
		Veg:     queryBool(c, "veg"),
		Spicy:   queryBool(c, "spicy"),
		Popular: queryBool(c, "popular"),
	}

	items := menu.Filter(menu.Catalog(), category, tags, c.QueryParam("search"))
	return c.JSON(http.StatusOK, items)
}

func queryBool(c echo.Context, key string) bool {
	switch c.QueryParam(key) {
	case "1", "true", "TRUE", "True":
		return true
	default:
		return false
	}
}
