package salesquery

import (
	"sort"
	"strings"

	"sales_insight/internal/api/sales/models"
)

// SortKey là trường được phép sort
type SortKey string

// SortDirection là chiều sort
type SortDirection string

const (
	SortByDate         SortKey = "date"
	SortByQuantity     SortKey = "quantity"
	SortByCustomerName SortKey = "customerName"

	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec xác định trường và chiều sort cho một truy vấn
type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}

// NewSortSpec chuẩn hóa sortBy/sortOrder thô thành SortSpec hợp lệ.
// Key không hợp lệ rơi về date. Direction không hợp lệ rơi về mặc định của
// key: desc cho date, asc cho các key còn lại.
func NewSortSpec(sortBy, sortOrder string) SortSpec {
	key := SortKey(strings.TrimSpace(sortBy))
	switch key {
	case SortByDate, SortByQuantity, SortByCustomerName:
	default:
		key = SortByDate
	}

	dir := SortDirection(strings.ToLower(strings.TrimSpace(sortOrder)))
	switch dir {
	case SortAsc, SortDesc:
	default:
		if key == SortByDate {
			dir = SortDesc
		} else {
			dir = SortAsc
		}
	}

	return SortSpec{Key: key, Direction: dir}
}

// Compare trả về -1/0/1 so sánh hai bản ghi theo SortSpec.
// Ngày thiếu so sánh như mốc thời gian sớm nhất; tên so sánh không phân biệt
// hoa thường. Chiều desc đảo dấu của so sánh cơ sở.
func Compare(a, b models.SalesRecord, spec SortSpec) int {
	var c int
	switch spec.Key {
	case SortByQuantity:
		c = compareInt(a.Quantity, b.Quantity)
	case SortByCustomerName:
		c = strings.Compare(strings.ToLower(a.CustomerName), strings.ToLower(b.CustomerName))
	default: // SortByDate
		c = compareDate(a, b)
	}

	if spec.Direction == SortDesc {
		return -c
	}
	return c
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareDate(a, b models.SalesRecord) int {
	// nil date xếp trước mọi date thực
	switch {
	case a.Date == nil && b.Date == nil:
		return 0
	case a.Date == nil:
		return -1
	case b.Date == nil:
		return 1
	case a.Date.Before(*b.Date):
		return -1
	case a.Date.After(*b.Date):
		return 1
	default:
		return 0
	}
}

// Sort sắp xếp slice tại chỗ theo SortSpec, stable: các bản ghi có key bằng
// nhau giữ nguyên thứ tự tương đối ban đầu (quantity/date trùng lặp nhiều).
func Sort(records []models.SalesRecord, spec SortSpec) {
	sort.SliceStable(records, func(i, j int) bool {
		return Compare(records[i], records[j], spec) < 0
	})
}
