// Package loader nạp dữ liệu bán hàng từ file CSV thành []SalesRecord đã chuẩn hóa.
// Mọi ép kiểu ở biên ingestion theo chính sách lenient coercion: số hỏng về 0,
// ngày hỏng về nil; engine truy vấn phía sau không bao giờ phải ép kiểu lại.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	salesmodels "sales_insight/internal/api/sales/models"
	"sales_insight/internal/logger"
	"sales_insight/internal/utility"
)

// Tên cột trong file CSV nguồn
const (
	colDate               = "Date"
	colCustomerName       = "Customer Name"
	colPhoneNumber        = "Phone Number"
	colRegion             = "Customer Region"
	colGender             = "Gender"
	colAge                = "Age"
	colProductCategory    = "Product Category"
	colProductName        = "Product Name"
	colQuantity           = "Quantity"
	colPricePerUnit       = "Price per Unit"
	colDiscountPercentage = "Discount Percentage"
	colTotalAmount        = "Total Amount"
	colFinalAmount        = "Final Amount"
	colPaymentMethod      = "Payment Method"
	colTags               = "Tags"
	colOrderStatus        = "Order Status"
)

// LoadSalesCSV đọc file CSV và trả về các bản ghi đã chuẩn hóa.
// File không tồn tại hoặc không đọc được là lỗi; dòng dữ liệu hỏng thì không —
// từng field hỏng rơi về zero value theo lenient coercion.
func LoadSalesCSV(path string) ([]salesmodels.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("không mở được file dữ liệu %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadSalesCSV(f)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithField("path", path).
		Infof("Đã nạp %d bản ghi bán hàng từ CSV vào memory", len(records))
	return records, nil
}

// ReadSalesCSV parse nội dung CSV từ reader. Dòng đầu là header; cột thiếu
// trong header cho field rỗng tương ứng trên mọi bản ghi.
func ReadSalesCSV(r io.Reader) ([]salesmodels.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Chấp nhận dòng thiếu cột

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("không đọc được header CSV: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}

	// Slice không nil kể cả khi file chỉ có header: dataset rỗng nạp thành công
	// khác với dataset chưa nạp (nil) ở tầng service
	records := make([]salesmodels.SalesRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("không đọc được dòng CSV: %w", err)
		}
		records = append(records, parseRow(row, colIdx))
	}

	return records, nil
}

// parseRow chuyển một dòng CSV thành SalesRecord
func parseRow(row []string, colIdx map[string]int) salesmodels.SalesRecord {
	field := func(name string) string {
		idx, ok := colIdx[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rec := salesmodels.SalesRecord{
		CustomerName:       field(colCustomerName),
		PhoneNumber:        field(colPhoneNumber),
		Region:             field(colRegion),
		Gender:             field(colGender),
		Age:                utility.LenientInt(field(colAge)),
		ProductCategory:    field(colProductCategory),
		ProductName:        field(colProductName),
		Quantity:           utility.LenientInt(field(colQuantity)),
		PricePerUnit:       utility.LenientFloat(field(colPricePerUnit)),
		DiscountPercentage: utility.LenientFloat(field(colDiscountPercentage)),
		TotalAmount:        utility.LenientFloat(field(colTotalAmount)),
		FinalAmount:        utility.LenientFloat(field(colFinalAmount)),
		PaymentMethod:      field(colPaymentMethod),
		OrderStatus:        field(colOrderStatus),
	}

	// Tags: chuỗi phân cách dấu phẩy → set đã trim
	if raw := field(colTags); raw != "" {
		rec.Tags = utility.SplitAndTrim(raw, ",")
	}

	// Ngày hỏng → nil: bản ghi vẫn được nạp, chỉ không match filter theo ngày
	if t, ok := utility.LenientDate(field(colDate)); ok {
		rec.Date = &t
	}

	return rec
}
