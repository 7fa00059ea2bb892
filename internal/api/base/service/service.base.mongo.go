// Package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB.
// Service sales là read-heavy: nhóm hàm ở đây là mặt đọc (find/count/distinct/
// aggregate) cộng InsertMany phục vụ seed dữ liệu offline.
package basesvc

import (
	"context"

	"sales_insight/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error
	InsertMany(ctx context.Context, data []Model) (int64, error)
}

// BaseServiceMongoImpl định nghĩa struct triển khai các phương thức cơ bản cho service
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl trên collection được cung cấp
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng khi domain service cần truy cập trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// Find tìm tất cả bản ghi theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []T{}
	}

	return results, nil
}

// CountDocuments đếm số lượng document
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return count, nil
}

// Distinct lấy danh sách các giá trị duy nhất
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.D{}
	}

	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return values, nil
}

// Aggregate chạy pipeline và decode toàn bộ kết quả vào results (con trỏ slice)
func (s *BaseServiceMongoImpl[T]) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, results); err != nil {
		return common.ConvertMongoError(err)
	}

	return nil
}

// InsertMany tạo nhiều bản ghi trong database; trả về số bản ghi đã insert.
// Chỉ dùng cho seed dữ liệu offline, API công khai không có đường ghi.
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	documents := make([]interface{}, 0, len(data))
	for _, item := range data {
		documents = append(documents, item)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return int64(len(result.InsertedIDs)), nil
}
