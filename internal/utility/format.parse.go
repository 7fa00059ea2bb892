package utility

import (
	"strconv"
	"strings"
	"time"
)

// Các hàm parse "lenient coercion": input không parse được trả về zero value / unset
// thay vì lỗi. Đây là policy có chủ đích của toàn hệ thống (normalizer, CSV loader):
// giá trị hỏng bị loại khỏi predicate/record chứ không làm fail request hay dòng import.

// LenientInt parse chuỗi thành int; trả về 0 nếu không parse được
func LenientInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// LenientIntOpt parse chuỗi thành int; trả về (0, false) nếu rỗng hoặc không parse được
func LenientIntOpt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LenientFloat parse chuỗi thành float64; trả về 0 nếu không parse được
func LenientFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// LenientDate parse chuỗi ngày; trả về (zero, false) nếu rỗng hoặc không parse được.
// Chấp nhận YYYY-MM-DD và RFC3339 (dữ liệu nguồn có cả hai dạng).
func LenientDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
