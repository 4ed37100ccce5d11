package middleware

import (
	"net/http"
	"strings"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
	"luxestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

const CtxUserKey = "current_user" // model.User

// bearerAuth用のセッションミドルウェア。
// トークン検証は外部認証サービス（IdentityGateway）に委ねる。
// sessionを渡すとサインイン遷移の通知にも反映する（nil可）。
func AuthSession(ids repo.IdentityGateway, session *usecase.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := ids.VerifyToken(c.Request().Context(), rawToken)
			if err != nil || user.ID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxUserKey, user)

			if session != nil {
				session.Observe(user)
			}

			return next(c)
		}
	}
}

// CurrentUser は検証済みの利用者をcontextから取り出す。
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(CtxUserKey).(model.User)
	if !ok || u.ID == "" {
		return model.User{}, false
	}
	return u, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
