package salesvc

import (
	"context"
	"sort"
	"time"

	salesdto "sales_insight/internal/api/sales/dto"
	salesmodels "sales_insight/internal/api/sales/models"
	"sales_insight/internal/common"
	"sales_insight/internal/salesquery"
)

// MemorySalesService phục vụ truy vấn trên snapshot bất biến nạp từ CSV lúc
// khởi động. Lọc một lần thành slice vật chất hóa rồi đếm, sort+cắt trang và
// tổng hợp đều từ slice đó, nên ba kết quả nhất quán hiển nhiên. Records là
// read-only sau khi nạp: các truy vấn đồng thời đọc song song không cần lock.
type MemorySalesService struct {
	records []salesmodels.SalesRecord
}

// NewMemorySalesService tạo service trên tập bản ghi đã nạp
func NewMemorySalesService(records []salesmodels.SalesRecord) *MemorySalesService {
	return &MemorySalesService{records: records}
}

// Backend trả về tên backend
func (s *MemorySalesService) Backend() string {
	return BackendMemory
}

// Query thực thi truy vấn trên snapshot in-memory
func (s *MemorySalesService) Query(ctx context.Context, spec salesquery.FilterSpec, search string, sortSpec salesquery.SortSpec, pageReq salesquery.PageRequest) (*salesdto.SalesQueryResult, error) {
	if s.records == nil {
		return nil, common.ErrStoreUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Vật chất hóa tập lọc một lần; count/page/statistics đều từ slice này
	filtered := salesquery.Filter(s.records, spec, search)
	stats := salesquery.Aggregate(filtered)
	window, pagination := salesquery.Paginate(int64(len(filtered)), pageReq)

	// Sort trên bản copy để không xáo trộn thứ tự gốc giữa các truy vấn đồng thời
	sorted := make([]salesmodels.SalesRecord, len(filtered))
	copy(sorted, filtered)
	salesquery.Sort(sorted, sortSpec)

	// Cắt cửa sổ trang; vượt quá cuối tập cho trang rỗng
	start := window.Skip
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + window.Limit
	if end > len(sorted) {
		end = len(sorted)
	}

	return &salesdto.SalesQueryResult{
		Data:       sorted[start:end],
		Pagination: pagination,
		Statistics: stats,
	}, nil
}

// FilterOptions quét snapshot lấy các giá trị filter khả dụng
func (s *MemorySalesService) FilterOptions(ctx context.Context) (*salesdto.FilterOptionsResponse, error) {
	if s.records == nil {
		return nil, common.ErrStoreUnavailable
	}

	regions := map[string]struct{}{}
	genders := map[string]struct{}{}
	categories := map[string]struct{}{}
	payments := map[string]struct{}{}
	tags := map[string]struct{}{}

	resp := &salesdto.FilterOptionsResponse{}
	var minDate, maxDate *time.Time
	first := true

	for _, rec := range s.records {
		if rec.Region != "" {
			regions[rec.Region] = struct{}{}
		}
		if rec.Gender != "" {
			genders[rec.Gender] = struct{}{}
		}
		if rec.ProductCategory != "" {
			categories[rec.ProductCategory] = struct{}{}
		}
		if rec.PaymentMethod != "" {
			payments[rec.PaymentMethod] = struct{}{}
		}
		for _, tag := range rec.Tags {
			if tag != "" {
				tags[tag] = struct{}{}
			}
		}

		if first || rec.Age < resp.AgeRange.Min {
			resp.AgeRange.Min = rec.Age
		}
		if first || rec.Age > resp.AgeRange.Max {
			resp.AgeRange.Max = rec.Age
		}
		first = false

		if rec.Date != nil {
			if minDate == nil || rec.Date.Before(*minDate) {
				minDate = rec.Date
			}
			if maxDate == nil || rec.Date.After(*maxDate) {
				maxDate = rec.Date
			}
		}
	}

	resp.Regions = sortedKeys(regions)
	resp.Genders = sortedKeys(genders)
	resp.Categories = sortedKeys(categories)
	resp.PaymentMethods = sortedKeys(payments)
	resp.Tags = sortedKeys(tags)
	if minDate != nil {
		resp.DateRange.Min = minDate.Format("2006-01-02")
	}
	if maxDate != nil {
		resp.DateRange.Max = maxDate.Format("2006-01-02")
	}

	return resp, nil
}

// Health báo trạng thái snapshot in-memory
func (s *MemorySalesService) Health(ctx context.Context) (*salesdto.HealthResponse, error) {
	if s.records == nil {
		return nil, common.ErrStoreUnavailable
	}
	return &salesdto.HealthResponse{
		Status:       "healthy",
		Backend:      BackendMemory,
		TotalRecords: int64(len(s.records)),
	}, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
