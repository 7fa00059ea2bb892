package salesquery

import (
	"net/url"

	"sales_insight/internal/utility"
)

// PageRequest là yêu cầu trang đã chuẩn hóa: Page >= 1, PageSize > 0
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest chuẩn hóa page/pageSize từ query params.
// Giá trị thiếu, không parse được hoặc ngoài miền rơi về mặc định: page 1, pageSize 10.
func NewPageRequest(params url.Values) PageRequest {
	req := PageRequest{Page: 1, PageSize: 10}
	if v, ok := utility.LenientIntOpt(params.Get("page")); ok && v >= 1 {
		req.Page = v
	}
	if v, ok := utility.LenientIntOpt(params.Get("pageSize")); ok && v > 0 {
		req.PageSize = v
	}
	return req
}

// PageWindow là cửa sổ (skip, limit) cắt từ tập đã lọc và sort
type PageWindow struct {
	Skip  int
	Limit int
}

// Pagination là metadata phân trang tính trên tổng số bản ghi của tập lọc
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	PageSize        int   `json:"pageSize"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int64 `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Paginate tính cửa sổ trang và metadata từ tổng số item và PageRequest.
// Trang vượt quá cuối tập cho trang rỗng, không phải lỗi.
func Paginate(totalItems int64, req PageRequest) (PageWindow, Pagination) {
	skip := (req.Page - 1) * req.PageSize
	if skip < 0 {
		skip = 0
	}

	var totalPages int64
	if totalItems > 0 {
		totalPages = (totalItems + int64(req.PageSize) - 1) / int64(req.PageSize)
	}

	window := PageWindow{Skip: skip, Limit: req.PageSize}
	pagination := Pagination{
		CurrentPage:     req.Page,
		PageSize:        req.PageSize,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasNextPage:     int64(skip+req.PageSize) < totalItems,
		HasPreviousPage: req.Page > 1,
	}
	return window, pagination
}
