// Package dto - các kiểu request/response cho domain Sales.
package dto

import (
	salesmodels "sales_insight/internal/api/sales/models"
	"sales_insight/internal/salesquery"
)

// SalesQueryRequest gom các tham số truy vấn thô từ query string.
// Không validate chặt ở đây: normalizer áp dụng lenient coercion, giá trị hỏng
// bị loại khỏi predicate chứ không làm fail request. Chỉ chặn input nguy hiểm.
type SalesQueryRequest struct {
	Search    string `query:"search" validate:"omitempty,no_xss"`
	Page      string `query:"page"`
	PageSize  string `query:"pageSize"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`

	Regions        string `query:"regions"`
	Genders        string `query:"genders"`
	Categories     string `query:"categories"`
	Tags           string `query:"tags" validate:"omitempty,no_xss"`
	PaymentMethods string `query:"paymentMethods"`

	AgeMin    string `query:"ageMin"`
	AgeMax    string `query:"ageMax"`
	DateStart string `query:"dateStart"`
	DateEnd   string `query:"dateEnd"`
}

// SalesQueryResult là envelope kết quả của một truy vấn sales: trang dữ liệu,
// metadata phân trang và thống kê tính trên TOÀN BỘ tập lọc (không phụ thuộc trang)
type SalesQueryResult struct {
	Data       []salesmodels.SalesRecord `json:"data"`
	Pagination salesquery.Pagination     `json:"pagination"`
	Statistics salesquery.Statistics     `json:"statistics"`
}

// NumericRange là khoảng [min, max] quan sát được trên dữ liệu
type NumericRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DateRange là khoảng ngày quan sát được trên dữ liệu (YYYY-MM-DD, rỗng nếu không có)
type DateRange struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// FilterOptionsResponse liệt kê các giá trị filter khả dụng cho dashboard
type FilterOptionsResponse struct {
	Regions        []string     `json:"regions"`
	Genders        []string     `json:"genders"`
	Categories     []string     `json:"categories"`
	PaymentMethods []string     `json:"paymentMethods"`
	Tags           []string     `json:"tags"`
	AgeRange       NumericRange `json:"ageRange"`
	DateRange      DateRange    `json:"dateRange"`
}

// HealthResponse là trạng thái backend truy vấn
type HealthResponse struct {
	Status       string `json:"status"`
	Backend      string `json:"backend"`
	TotalRecords int64  `json:"totalRecords"`
}
