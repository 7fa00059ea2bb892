package main

import (
	"context"
	"time"

	"sales_insight/config"
	"sales_insight/internal/api/sales/loader"
	salesvc "sales_insight/internal/api/sales/service"
	"sales_insight/internal/database"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()  // Khởi tạo tên các collection trong database
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình server
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.SalesRecords = "sales_records"
}

// initValidator khởi tạo validator
func initValidator() {
	global.InitValidator()
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	cfg := config.NewConfig()
	if cfg == nil {
		logger.GetAppLogger().Fatal("Không đọc được cấu hình server")
	}
	global.ServerConfig = cfg
}

// InitQueryService dựng executor truy vấn theo backend cấu hình.
// memory: nạp CSV thành snapshot bất biến trong RAM.
// mongo: kết nối MongoDB, đăng ký collection và bảo đảm index.
func InitQueryService() salesvc.SalesQueryService {
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	switch cfg.SalesBackend {
	case salesvc.BackendMongo:
		client, err := database.GetInstance(cfg)
		if err != nil {
			log.WithError(err).Fatal("Không kết nối được MongoDB")
		}
		global.MongoDB_Session = client

		db := client.Database(cfg.MongoDB_DBName)
		collection := db.Collection(global.ColNames.SalesRecords)
		if _, err := global.RegistryCollections.Register(global.ColNames.SalesRecords, collection); err != nil {
			log.WithError(err).Fatal("Không đăng ký được collection vào registry")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.CreateSalesIndexes(ctx, db); err != nil {
			// Index lỗi không chặn server: truy vấn vẫn đúng, chỉ chậm hơn
			log.WithError(err).Warn("Không tạo được index cho sales_records")
		}

		svc, err := salesvc.NewMongoSalesService(client,
			time.Duration(cfg.QueryTimeoutSeconds)*time.Second)
		if err != nil {
			log.WithError(err).Fatal("Không khởi tạo được query service")
		}
		log.WithField("backend", salesvc.BackendMongo).Info("Query backend sẵn sàng")
		return svc

	default:
		records, err := loader.LoadSalesCSV(cfg.SalesCSVPath)
		if err != nil {
			log.WithError(err).Fatal("Không nạp được dữ liệu CSV")
		}
		log.WithField("backend", salesvc.BackendMemory).
			WithField("records", len(records)).Info("Query backend sẵn sàng")
		return salesvc.NewMemorySalesService(records)
	}
}
