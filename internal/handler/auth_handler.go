package handler

import (
	"net/http"

	"luxestore/internal/middleware"
	"luxestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /authのHTTP（サインイン自体は外部認証サービスで行う）
type AuthHandler struct {
	session *usecase.Session
}

// DI
func NewAuthHandler(session *usecase.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.GET("/auth/me", h.me, authMW)
	e.POST("/auth/signout", h.signOut, authMW)
}

// 検証済みのサインイン情報を返す
func (h *AuthHandler) me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, user)
}

// サインアウト遷移をセッションへ通知する。
// トークンの失効は外部認証サービス側の仕事（ここでは状態遷移だけ扱う）。
func (h *AuthHandler) signOut(c echo.Context) error {
	if _, ok := middleware.CurrentUser(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if h.session != nil {
		h.session.SignOut()
	}
	return c.NoContent(http.StatusNoContent)
}
