package common

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest         = 400 // Yêu cầu không hợp lệ
	StatusNotFound           = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed   = 405 // Phương thức HTTP không được hỗ trợ
	StatusPreconditionFailed = 412 // Điều kiện tiên quyết không thỏa mãn
	StatusTooManyRequests    = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Thao tác thành công"

	// Error Messages
	MsgBadRequest         = "Yêu cầu không hợp lệ"
	MsgNotFound           = "Không tìm thấy tài nguyên"
	MsgInternalError      = "Lỗi hệ thống"
	MsgServiceUnavailable = "Dịch vụ không khả dụng"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: DB_001)
	Category    string // Phân loại lỗi (ví dụ: Database)
	SubCategory string // Phân loại con (ví dụ: Connection)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	ErrCodeDatabaseTimeout = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Timeout",
		Description: "Truy vấn vượt quá thời gian cho phép",
	}

	// Query Engine Errors (QRY_xxx) — phân biệt 3 thao tác con của một truy vấn sales
	ErrCodeQueryCount = ErrorCode{
		Code:        "QRY_001",
		Category:    "Query",
		SubCategory: "Count",
		Description: "Lỗi đếm bản ghi theo filter",
	}

	ErrCodeQueryFind = ErrorCode{
		Code:        "QRY_002",
		Category:    "Query",
		SubCategory: "Find",
		Description: "Lỗi lấy trang dữ liệu theo filter",
	}

	ErrCodeQueryAggregate = ErrorCode{
		Code:        "QRY_003",
		Category:    "Query",
		SubCategory: "Aggregate",
		Description: "Lỗi tính thống kê theo filter",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// Unwrap trả về lỗi gốc nếu Details là một error (hỗ trợ errors.Is/As xuyên lớp)
func (e *Error) Unwrap() error {
	if cause, ok := e.Details.(error); ok {
		return cause
	}
	return nil
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)

	// ErrStoreUnavailable: kho dữ liệu chưa sẵn sàng — lỗi precondition, phân biệt
	// rõ với lỗi tính toán; caller map sang 503, không bao giờ coi là "0 kết quả".
	ErrStoreUnavailable = NewError(ErrCodeDatabaseConnection, "Kho dữ liệu không khả dụng", StatusServiceUnavailable, nil)

	// ErrQueryTimeout: truy vấn vượt thời gian caller cho phép — phân biệt với lỗi truy vấn thường.
	ErrQueryTimeout = NewError(ErrCodeDatabaseTimeout, "Truy vấn vượt quá thời gian cho phép", StatusGatewayTimeout, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert các lỗi đã được phân loại
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrQueryTimeout) {
		return err
	}

	// Client đã disconnect: lỗi precondition, không phải lỗi truy vấn
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return ErrStoreUnavailable
	}

	// Hết thời gian cho phép: map sang timeout riêng để caller phân biệt với lỗi truy vấn
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return ErrQueryTimeout
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		if mongoErr.Code >= 100 && mongoErr.Code < 200 {
			return NewError(ErrCodeDatabaseConnection, "Lỗi kết nối MongoDB", StatusServiceUnavailable, err)
		}
		return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn MongoDB", StatusInternalServerError, err)
	}

	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, "Lỗi mạng khi kết nối MongoDB", StatusServiceUnavailable, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeDatabaseQuery, "Dữ liệu trùng lặp trong MongoDB", StatusInternalServerError, err)
	}

	// Nếu không tìm thấy lỗi cụ thể, trả về lỗi cơ sở dữ liệu chung
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
