// Package database - kết nối MongoDB và index cho collection bán hàng.
package database

import (
	"context"
	"strings"

	"sales_insight/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSalesIndexes tạo các index phục vụ filter/sort trên sales_records.
// Các trường index khớp với các ràng buộc mà query builder đẩy xuống MongoDB.
func CreateSalesIndexes(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(global.ColNames.SalesRecords)

	singleFieldIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "region", Value: 1}}, Options: options.Index().SetName("sales_region")},
		{Keys: bson.D{{Key: "gender", Value: 1}}, Options: options.Index().SetName("sales_gender")},
		{Keys: bson.D{{Key: "age", Value: 1}}, Options: options.Index().SetName("sales_age")},
		{Keys: bson.D{{Key: "productCategory", Value: 1}}, Options: options.Index().SetName("sales_category")},
		{Keys: bson.D{{Key: "paymentMethod", Value: 1}}, Options: options.Index().SetName("sales_payment")},
		{Keys: bson.D{{Key: "date", Value: -1}}, Options: options.Index().SetName("sales_date_desc")},
		{Keys: bson.D{{Key: "quantity", Value: 1}}, Options: options.Index().SetName("sales_quantity")},
	}
	for _, idx := range singleFieldIndexes {
		if _, err := col.Indexes().CreateOne(ctx, idx); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// Text index cho tìm kiếm theo tên và số điện thoại khách hàng
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerName", Value: "text"},
			{Key: "phoneNumber", Value: "text"},
		},
		Options: options.Index().SetName("sales_customer_text"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
