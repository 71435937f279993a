package middleware

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// RoleGuardはcontextのroleが要求と一致するかを確認します。
// 一致のみ許可（adminはkitchen用エンドポイントに入れない）。
func RoleGuard(required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxRoleKey)
			role, ok := rawRole.(model.Role)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if role != required {
				return c.JSON(http.StatusForbidden, errorJSON(string(required)+" only"))
			}

			return next(c)
		}
	}
}
