// Package salesvc chứa các service truy vấn dữ liệu bán hàng.
// Có hai executor thay thế được cho nhau: memory (snapshot CSV trong RAM) và
// mongo (pushdown xuống MongoDB). Cả hai phải cho kết quả giống hệt nhau với
// cùng một bộ filter/sort/page — predicate trong salesquery là chuẩn ngữ nghĩa.
package salesvc

import (
	"context"
	"errors"

	salesdto "sales_insight/internal/api/sales/dto"
	"sales_insight/internal/common"
	"sales_insight/internal/salesquery"
)

// Tên backend truy vấn
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// SalesQueryService là executor cho một truy vấn sales: một thao tác logic
// trả về trang dữ liệu + phân trang + thống kê nhất quán với nhau (cùng một
// snapshot của tập lọc, không phải ba truy vấn độc lập trên dữ liệu khác nhau).
type SalesQueryService interface {
	// Query thực thi một truy vấn đầy đủ. Thống kê fail thì degrade về zero
	// và vẫn trả trang hợp lệ; count/find fail thì cả request fail.
	Query(ctx context.Context, spec salesquery.FilterSpec, search string, sortSpec salesquery.SortSpec, pageReq salesquery.PageRequest) (*salesdto.SalesQueryResult, error)

	// FilterOptions trả về các giá trị filter khả dụng quan sát được trên dữ liệu
	FilterOptions(ctx context.Context) (*salesdto.FilterOptionsResponse, error)

	// Health kiểm tra kho dữ liệu sẵn sàng; không sẵn sàng là lỗi precondition
	Health(ctx context.Context) (*salesdto.HealthResponse, error)

	// Backend trả về tên backend đang phục vụ
	Backend() string
}

// tagQueryOp gắn mã thao tác (count/find/aggregate) vào lỗi truy vấn để caller
// log và báo cáo được thao tác con nào fail. Lỗi đã phân loại (store unavailable,
// timeout) giữ nguyên để không mất taxonomy.
func tagQueryOp(err error, code common.ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrStoreUnavailable) || errors.Is(err, common.ErrQueryTimeout) {
		return err
	}
	return common.NewError(code, message, common.StatusInternalServerError, err)
}
