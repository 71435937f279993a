package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理レポートAPI（adminロール必須）
type AdminHandler struct {
	uc *usecase.OrderUsecase
}

func NewAdminHandler(uc *usecase.OrderUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, sessions repository.SessionRepository) {
	e.GET("/admin/report", h.report,
		middleware.SessionAuth(cfg, sessions),
		middleware.RoleGuard(model.RoleAdmin),
	)
}

func (h *AdminHandler) report(c echo.Context) error {
	out, err := h.uc.AdminReport(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
