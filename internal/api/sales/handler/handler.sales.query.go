// Package saleshdl - Handler HTTP cho API truy vấn dữ liệu bán hàng.
package saleshdl

import (
	"net/url"
	"strings"

	basehdl "sales_insight/internal/api/base/handler"
	salesdto "sales_insight/internal/api/sales/dto"
	salesvc "sales_insight/internal/api/sales/service"
	"sales_insight/internal/common"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"
	"sales_insight/internal/salesquery"

	"github.com/gofiber/fiber/v3"
)

// SalesHandler xử lý API truy vấn sales. Backend (memory/mongo) được inject
// qua SalesQueryService; handler không biết dữ liệu nằm ở đâu.
type SalesHandler struct {
	QueryService salesvc.SalesQueryService
}

// NewSalesHandler tạo SalesHandler trên service được cung cấp
func NewSalesHandler(service salesvc.SalesQueryService) *SalesHandler {
	return &SalesHandler{QueryService: service}
}

// HandleQuery xử lý GET /sales — truy vấn có filter/search/sort/phân trang.
// Trả về trang dữ liệu + pagination + statistics tính trên toàn tập lọc.
func (h *SalesHandler) HandleQuery(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := readQueryRequest(c)
		if err := global.Validate.Struct(input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err.Error(),
			))
		}

		params := queryParams(input)
		spec := salesquery.NewFilterSpec(params)
		sortSpec := salesquery.NewSortSpec(input.SortBy, input.SortOrder)
		pageReq := salesquery.NewPageRequest(params)

		result, err := h.QueryService.Query(c.Context(), spec, input.Search, sortSpec, pageReq)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Truy vấn sales thất bại")
			return basehdl.HandleResponse(c, nil, err)
		}

		return basehdl.HandleResponse(c, result, nil)
	})
}

// readQueryRequest đọc toàn bộ query params thô vào DTO.
// Param dạng danh sách nhận cả hai kiểu: lặp key (?regions=North&regions=South)
// và phân cách dấu phẩy (?regions=North,South); normalizer tách dấu phẩy phía sau.
func readQueryRequest(c fiber.Ctx) *salesdto.SalesQueryRequest {
	return &salesdto.SalesQueryRequest{
		Search:         c.Query("search"),
		Page:           c.Query("page"),
		PageSize:       c.Query("pageSize"),
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
		Regions:        queryAll(c, "regions"),
		Genders:        queryAll(c, "genders"),
		Categories:     queryAll(c, "categories"),
		Tags:           queryAll(c, "tags"),
		PaymentMethods: queryAll(c, "paymentMethods"),
		AgeMin:         c.Query("ageMin"),
		AgeMax:         c.Query("ageMax"),
		DateStart:      c.Query("dateStart"),
		DateEnd:        c.Query("dateEnd"),
	}
}

// queryAll gom mọi lần xuất hiện của một query param thành chuỗi phân cách dấu phẩy
func queryAll(c fiber.Ctx, key string) string {
	values := c.RequestCtx().QueryArgs().PeekMulti(key)
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s := string(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ",")
}

// queryParams chuyển DTO về url.Values cho normalizer; param rỗng bỏ qua
func queryParams(input *salesdto.SalesQueryRequest) url.Values {
	params := url.Values{}
	set := func(name, value string) {
		if value != "" {
			params.Set(name, value)
		}
	}
	set("page", input.Page)
	set("pageSize", input.PageSize)
	set("regions", input.Regions)
	set("genders", input.Genders)
	set("categories", input.Categories)
	set("tags", input.Tags)
	set("paymentMethods", input.PaymentMethods)
	set("ageMin", input.AgeMin)
	set("ageMax", input.AgeMax)
	set("dateStart", input.DateStart)
	set("dateEnd", input.DateEnd)
	return params
}
