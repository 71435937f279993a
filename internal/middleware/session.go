package middleware

import (
	"errors"
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CtxUsernameKey  = "staff_username" // string
	CtxRoleKey      = "staff_role"     // model.Role
	CtxSessionIDKey = "session_id"     // string

	SessionCookieName = "staff_session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// Cookieのトークンから取り出す値
type SessionClaims struct {
	Username  string
	Role      model.Role
	SessionID string
}

// ParseSessionTokenはCookie値のJWTを検証してclaimsを返す
func ParseSessionToken(secret []byte, raw string) (SessionClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return SessionClaims{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return SessionClaims{}, errors.New("invalid sub")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return SessionClaims{}, errors.New("invalid role")
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return SessionClaims{}, errors.New("invalid jti")
	}

	return SessionClaims{
		Username:  sub,
		Role:      model.Role(role),
		SessionID: jti,
	}, nil
}

// SessionAuthはセッションCookie検証ミドルウェア。
// 署名の検証だけでなくサーバー側のセッション行も引く。
// 行が消えていれば（logout済み）トークンが有効期限内でも401。
func SessionAuth(cfg config.Config, sessions repository.SessionRepository) echo.MiddlewareFunc {
	secret := []byte(cfg.SessionSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims, err := ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			sess, err := sessions.FindByID(c.Request().Context(), claims.SessionID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if time.Now().After(sess.ExpiresAt) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//roleはサーバー側の行を正とする
			c.Set(CtxUsernameKey, sess.Username)
			c.Set(CtxRoleKey, sess.Role)
			c.Set(CtxSessionIDKey, sess.ID)

			return next(c)
		}
	}
}
