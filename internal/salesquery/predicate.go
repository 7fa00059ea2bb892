package salesquery

import (
	"strings"

	"sales_insight/internal/api/sales/models"
	"sales_insight/internal/utility"
)

// Matches quyết định một bản ghi có thỏa FilterSpec + search term hay không.
// Tất cả ràng buộc AND với nhau; thứ tự đánh giá cố định để chi phí short-circuit
// ổn định. Đây là nguồn ngữ nghĩa duy nhất: query builder cho MongoDB phải cho
// kết quả giống hệt việc chạy hàm này trên từng bản ghi.
func Matches(rec models.SalesRecord, spec FilterSpec, search string) bool {
	// 1. Search: substring không phân biệt hoa thường trên tên HOẶC số điện thoại
	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		name := strings.ToLower(rec.CustomerName)
		phone := strings.ToLower(rec.PhoneNumber)
		if !strings.Contains(name, term) && !strings.Contains(phone, term) {
			return false
		}
	}

	// 2. Membership chính xác theo từng set đang active
	if len(spec.Regions) > 0 && !utility.Contains(spec.Regions, rec.Region) {
		return false
	}
	if len(spec.Genders) > 0 && !utility.Contains(spec.Genders, rec.Gender) {
		return false
	}
	if len(spec.Categories) > 0 && !utility.Contains(spec.Categories, rec.ProductCategory) {
		return false
	}
	if len(spec.PaymentMethods) > 0 && !utility.Contains(spec.PaymentMethods, rec.PaymentMethod) {
		return false
	}

	// 3. Khoảng tuổi, inclusive hai đầu; min > max tự nhiên cho tập rỗng
	if spec.AgeMin != nil && rec.Age < *spec.AgeMin {
		return false
	}
	if spec.AgeMax != nil && rec.Age > *spec.AgeMax {
		return false
	}

	// 4. Tags: match nếu BẤT KỲ filter tag nào là substring (không phân biệt
	// hoa thường) của BẤT KỲ tag nào trên bản ghi
	if len(spec.Tags) > 0 && !matchesAnyTag(rec.Tags, spec.Tags) {
		return false
	}

	// 5. Khoảng ngày: bản ghi không có ngày không bao giờ match khi có ràng buộc ngày
	if start, ok := spec.StartBound(); ok {
		if rec.Date == nil || rec.Date.Before(start) {
			return false
		}
	}
	if end, ok := spec.EndBound(); ok {
		if rec.Date == nil || rec.Date.After(end) {
			return false
		}
	}

	return true
}

// matchesAnyTag kiểm tra OR-of-substrings giữa filter tags và tags của bản ghi
func matchesAnyTag(recordTags, filterTags []string) bool {
	for _, ft := range filterTags {
		ft = strings.ToLower(ft)
		for _, rt := range recordTags {
			if strings.Contains(strings.ToLower(rt), ft) {
				return true
			}
		}
	}
	return false
}

// Filter lọc toàn bộ slice bằng Matches, giữ nguyên thứ tự input.
// Kết quả là slice mới; input không bị mutate.
func Filter(records []models.SalesRecord, spec FilterSpec, search string) []models.SalesRecord {
	result := make([]models.SalesRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, spec, search) {
			result = append(result, rec)
		}
	}
	return result
}
