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

// 厨房専用API（kitchenロール必須）
type KitchenHandler struct {
	uc *usecase.OrderUsecase
}

func NewKitchenHandler(uc *usecase.OrderUsecase) *KitchenHandler {
	return &KitchenHandler{uc: uc}
}

func (h *KitchenHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, sessions repository.SessionRepository) {
	mw := []echo.MiddlewareFunc{
		middleware.SessionAuth(cfg, sessions),
		middleware.RoleGuard(model.RoleKitchen),
	}

	e.GET("/orders", h.list, mw...)
	e.POST("/order/status", h.updateStatus, mw...)
	e.POST("/order/reply", h.reply, mw...)
}

type statusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type replyRequest struct {
	ID    int64  `json:"id"`
	Reply string `json:"reply"`
}

func (h *KitchenHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *KitchenHandler) updateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), req.ID, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *KitchenHandler) reply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AttachReply(c.Request().Context(), req.ID, req.Reply)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
