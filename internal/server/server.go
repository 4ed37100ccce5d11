package server

import (
	"luxestore/internal/handler"

	"github.com/labstack/echo/v4"
)

// ルーティングに必要なハンドラ一式
type Handlers struct {
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	AdminProduct *handler.AdminProductHandler
}

func Start(addr string, h Handlers, authMW echo.MiddlewareFunc) error {
	e := echo.New()
	e.HideBanner = true

	RegisterRoutes(e, h, authMW)
	return e.Start(addr)
}
