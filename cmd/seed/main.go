// Lệnh seed nạp file CSV dữ liệu bán hàng vào MongoDB và bảo đảm index.
// Đây là công cụ offline duy nhất có đường ghi; API công khai chỉ đọc.
//
// Cách dùng:
//
//	go run ./cmd/seed [-csv data/sales_data.csv] [-drop]
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"sales_insight/config"
	basesvc "sales_insight/internal/api/base/service"
	"sales_insight/internal/api/sales/loader"
	salesmodels "sales_insight/internal/api/sales/models"
	"sales_insight/internal/database"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	csvPath := flag.String("csv", "", "Đường dẫn file CSV (mặc định theo SALES_CSV_PATH)")
	drop := flag.Bool("drop", false, "Xóa dữ liệu cũ trong collection trước khi nạp")
	flag.Parse()

	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	log := logger.GetAppLogger()

	global.ColNames.SalesRecords = "sales_records"
	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Không đọc được cấu hình")
	}
	global.ServerConfig = cfg

	path := cfg.SalesCSVPath
	if *csvPath != "" {
		path = *csvPath
	}

	records, err := loader.LoadSalesCSV(path)
	if err != nil {
		log.WithError(err).Fatal("Không nạp được dữ liệu CSV")
	}

	client, err := database.GetInstance(cfg)
	if err != nil {
		log.WithError(err).Fatal("Không kết nối được MongoDB")
	}
	defer func() { _ = database.CloseInstance(client) }()

	db := client.Database(cfg.MongoDB_DBName)
	collection := db.Collection(global.ColNames.SalesRecords)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *drop {
		if _, err := collection.DeleteMany(ctx, bson.D{}); err != nil {
			log.WithError(err).Fatal("Không xóa được dữ liệu cũ")
		}
		log.Info("Đã xóa dữ liệu cũ trong sales_records")
	}

	svc := basesvc.NewBaseServiceMongo[salesmodels.SalesRecord](collection)
	inserted, err := svc.InsertMany(ctx, records)
	if err != nil {
		log.WithError(err).Fatal("Không insert được dữ liệu")
	}
	log.Infof("Đã nạp %d bản ghi vào %s.%s", inserted, cfg.MongoDB_DBName, global.ColNames.SalesRecords)

	if err := database.CreateSalesIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("Không tạo được index")
	}
	log.Info("Index cho sales_records đã sẵn sàng")
}
