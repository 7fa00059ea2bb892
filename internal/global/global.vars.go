package global

import (
	"sales_insight/config"
	"sales_insight/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	SalesRecords string // Tên collection cho bản ghi bán hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                   // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                  // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                             // Cấu hình của server
var ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
