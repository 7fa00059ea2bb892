// Package salesquery chứa engine truy vấn thuần cho dữ liệu bán hàng:
// chuẩn hóa filter, predicate, so sánh sort, phân trang và tổng hợp thống kê.
// Package không đụng tới HTTP hay storage; predicate ở đây là chuẩn ngữ nghĩa
// mà backend pushdown (MongoDB) phải cho kết quả giống hệt.
package salesquery

import (
	"net/url"
	"strings"
	"time"

	"sales_insight/internal/utility"
)

// FilterSpec là đặc tả filter đã chuẩn hóa cho một truy vấn.
// Field nil/rỗng nghĩa là "không ràng buộc". Các bound ngày giữ dạng chuỗi thô,
// parse lazy ở predicate; bound không parse được coi như không set (lenient coercion).
type FilterSpec struct {
	Regions        []string // Membership chính xác theo khu vực
	Genders        []string // Membership chính xác theo giới tính
	Categories     []string // Membership chính xác theo danh mục sản phẩm
	PaymentMethods []string // Membership chính xác theo phương thức thanh toán
	Tags           []string // OR các substring, so khớp không phân biệt hoa thường

	AgeMin *int // Tuổi tối thiểu (inclusive)
	AgeMax *int // Tuổi tối đa (inclusive)

	DateStart string // Ngày bắt đầu dạng YYYY-MM-DD, tính từ 00:00:00
	DateEnd   string // Ngày kết thúc dạng YYYY-MM-DD, tính đến 23:59:59.999
}

// NewFilterSpec chuẩn hóa query params thành FilterSpec.
// Chính sách lenient coercion: giá trị không parse được bị loại im lặng khỏi
// predicate, không bao giờ trả lỗi cho request. List param nhận cả dạng lặp lại
// lẫn dạng phân cách dấu phẩy.
func NewFilterSpec(params url.Values) FilterSpec {
	spec := FilterSpec{
		Regions:        listParam(params, "regions"),
		Genders:        listParam(params, "genders"),
		Categories:     listParam(params, "categories"),
		PaymentMethods: listParam(params, "paymentMethods"),
		Tags:           listParam(params, "tags"),
		DateStart:      strings.TrimSpace(params.Get("dateStart")),
		DateEnd:        strings.TrimSpace(params.Get("dateEnd")),
	}

	if v, ok := utility.LenientIntOpt(params.Get("ageMin")); ok {
		spec.AgeMin = &v
	}
	if v, ok := utility.LenientIntOpt(params.Get("ageMax")); ok {
		spec.AgeMax = &v
	}

	return spec
}

// listParam gom mọi value của một list param (lặp lại và/hoặc phân cách dấu phẩy),
// trim từng phần tử, bỏ rỗng. Trả về nil nếu không còn phần tử nào — list rỗng
// nghĩa là "không ràng buộc", không phải "không match gì".
func listParam(params url.Values, name string) []string {
	var items []string
	for _, raw := range params[name] {
		items = append(items, utility.SplitAndTrim(raw, ",")...)
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// StartBound trả về mốc đầu khoảng ngày (00:00:00) nếu bound được set và parse được
func (f FilterSpec) StartBound() (time.Time, bool) {
	return utility.LenientDate(f.DateStart)
}

// EndBound trả về mốc cuối khoảng ngày (23:59:59.999) nếu bound được set và parse được
func (f FilterSpec) EndBound() (time.Time, bool) {
	t, ok := utility.LenientDate(f.DateEnd)
	if !ok {
		return time.Time{}, false
	}
	return t.Add(24*time.Hour - time.Millisecond), true
}

// HasDateRange cho biết có ít nhất một bound ngày hợp lệ đang active hay không
func (f FilterSpec) HasDateRange() bool {
	if _, ok := f.StartBound(); ok {
		return true
	}
	_, ok := f.EndBound()
	return ok
}
