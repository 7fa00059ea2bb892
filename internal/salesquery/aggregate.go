package salesquery

import "sales_insight/internal/api/sales/models"

// Statistics là tổng hợp trên TOÀN BỘ tập đã lọc, độc lập với phân trang và sort
type Statistics struct {
	TotalUnits    int64   `json:"totalUnits"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalDiscount float64 `json:"totalDiscount"`
	TotalRecords  int64   `json:"totalRecords"`
}

// Aggregate tính thống kê từ tập đã lọc.
// TotalDiscount tính từ HAI tổng (Σ totalAmount − Σ finalAmount) chứ không cộng
// hiệu từng bản ghi, để discount âm cục bộ không triệt tiêu sai tổng toàn hệ;
// clamp tại 0 phòng dữ liệu upstream không nhất quán.
func Aggregate(records []models.SalesRecord) Statistics {
	stats := Statistics{TotalRecords: int64(len(records))}

	var sumTotal, sumFinal float64
	for _, rec := range records {
		stats.TotalUnits += int64(rec.Quantity)
		sumTotal += rec.TotalAmount
		sumFinal += rec.FinalAmount
	}

	stats.TotalAmount = sumFinal
	if d := sumTotal - sumFinal; d > 0 {
		stats.TotalDiscount = d
	}
	return stats
}
