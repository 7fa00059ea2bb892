package saleshdl

import (
	basehdl "sales_insight/internal/api/base/handler"
	"sales_insight/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// HandleHealth xử lý GET /sales/health — trạng thái kho dữ liệu và tổng số bản
// ghi. Kho không sẵn sàng trả 503 (lỗi precondition), không bao giờ là "0 kết quả".
func (h *SalesHandler) HandleHealth(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		health, err := h.QueryService.Health(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Warn("Health check backend thất bại")
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, health, nil)
	})
}
