package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Menu    *handler.MenuHandler
	Order   *handler.OrderHandler
	Kitchen *handler.KitchenHandler
	Admin   *handler.AdminHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, sessions repository.SessionRepository, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e)
	h.Menu.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Kitchen.RegisterRoutes(e, cfg, sessions)
	h.Admin.RegisterRoutes(e, cfg, sessions)
}
