// Package models - SalesRecord thuộc domain Sales (sales_records).
// Bản ghi giao dịch bán hàng đã chuẩn hóa; nguồn dữ liệu là file CSV hoặc collection MongoDB.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesRecord lưu một giao dịch bán hàng (sales_records).
// Record là read-only sau khi nạp: engine truy vấn không bao giờ mutate.
// Date là con trỏ để phân biệt "không có ngày" với zero time; bản ghi không có
// ngày sẽ không bao giờ match khi query có ràng buộc khoảng ngày.
type SalesRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Date         *time.Time `json:"date,omitempty" bson:"date,omitempty"` // Ngày giao dịch (nullable)
	CustomerName string     `json:"customerName" bson:"customerName"`     // Tên khách hàng
	PhoneNumber  string     `json:"phoneNumber" bson:"phoneNumber"`       // Số điện thoại khách hàng
	Region       string     `json:"region" bson:"region"`                 // Khu vực khách hàng
	Gender       string     `json:"gender" bson:"gender"`                 // Giới tính
	Age          int        `json:"age" bson:"age"`                       // Tuổi (0 nếu nguồn không parse được)

	ProductCategory string  `json:"productCategory" bson:"productCategory"` // Danh mục sản phẩm
	ProductName     string  `json:"productName" bson:"productName"`         // Tên sản phẩm
	Quantity        int     `json:"quantity" bson:"quantity"`               // Số lượng
	PricePerUnit    float64 `json:"pricePerUnit" bson:"pricePerUnit"`       // Đơn giá

	DiscountPercentage float64 `json:"discountPercentage" bson:"discountPercentage"` // Phần trăm giảm giá
	TotalAmount        float64 `json:"totalAmount" bson:"totalAmount"`               // Thành tiền trước giảm giá
	FinalAmount        float64 `json:"finalAmount" bson:"finalAmount"`               // Thành tiền sau giảm giá

	PaymentMethod string   `json:"paymentMethod" bson:"paymentMethod"`   // Phương thức thanh toán
	Tags          []string `json:"tags,omitempty" bson:"tags,omitempty"` // Tags (tách từ chuỗi phân cách dấu phẩy, đã trim)
	OrderStatus   string   `json:"orderStatus" bson:"orderStatus"`       // Trạng thái đơn hàng
}
