package server

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers, authMW echo.MiddlewareFunc) {
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, authMW)
	h.Checkout.RegisterRoutes(e, authMW)
	h.Auth.RegisterRoutes(e, authMW)
	h.Profile.RegisterRoutes(e, authMW)
	h.AdminProduct.RegisterRoutes(e, authMW)
}
