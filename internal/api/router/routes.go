// Package router quản lý việc định tuyến cho API.
package router

import (
	"github.com/gofiber/fiber/v3"

	saleshdl "sales_insight/internal/api/sales/handler"
)

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// SetupSalesRoutes đăng ký các route cho domain Sales.
// API chỉ có mặt đọc: truy vấn, filter options và health; không có đường ghi.
func (r *Router) SetupSalesRoutes(handler *saleshdl.SalesHandler) {
	prefix := NewRoutePrefix()
	sales := r.app.Group(prefix.V1 + "/sales")

	sales.Get("/", handler.HandleQuery)
	sales.Get("/filters", handler.HandleFilterOptions)
	sales.Get("/health", handler.HandleHealth)
}
