package saleshdl

import (
	basehdl "sales_insight/internal/api/base/handler"
	"sales_insight/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// HandleFilterOptions xử lý GET /sales/filters — danh sách giá trị filter khả
// dụng (region/gender/category/payment) và khoảng tuổi/ngày quan sát được.
func (h *SalesHandler) HandleFilterOptions(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		options, err := h.QueryService.FilterOptions(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Lấy filter options thất bại")
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, options, nil)
	})
}
