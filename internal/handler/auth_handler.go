package handler

import (
	"errors"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	loginUC      *auth.LoginUsecase
	logoutUC     *auth.LogoutUsecase
	secret       []byte
	cookieSecure bool
	limiter      *middleware.RateLimiter
}

// DIコンストラクタ
func NewAuthHandler(
	loginUC *auth.LoginUsecase,
	logoutUC *auth.LogoutUsecase,
	cfg config.Config,
	limiter *middleware.RateLimiter,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		logoutUC:     logoutUC,
		secret:       []byte(cfg.SessionSecret),
		cookieSecure: cfg.CookieSecure,
		limiter:      limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/login", h.login, h.limiter.Middleware())
	e.POST("/logout", h.logout)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logoutResponse struct {
	Success bool `json:"success"`
}

type loginFailedResponse struct {
	Success bool `json:"success"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, side, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			//理由は明かさない
			return c.JSON(http.StatusOK, loginFailedResponse{Success: false})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    side.SessionToken,
		Path:     "/",
		Expires:  side.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) logout(c echo.Context) error {
	//Cookieが無い/壊れていてもlogoutは成功扱い
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if claims, err := middleware.ParseSessionToken(h.secret, cookie.Value); err == nil {
			if err := h.logoutUC.Execute(c.Request().Context(), claims.SessionID); err != nil {
				return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
			}
		}
	}

	//Cookieを失効させる
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, logoutResponse{Success: true})
}
