package main

import (
	"fmt"

	"sales_insight/internal/api/router"
	saleshdl "sales_insight/internal/api/sales/handler"
	"sales_insight/internal/database"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (collection names, validator, config)
	InitGlobal()

	// Dựng query backend theo cấu hình (memory | mongo)
	queryService := InitQueryService()
	defer func() {
		if global.MongoDB_Session != nil {
			_ = database.CloseInstance(global.MongoDB_Session)
		}
	}()

	// Khởi tạo Fiber app và đăng ký routes
	app := InitFiberApp()
	r := router.NewRouter(app)
	r.SetupSalesRoutes(saleshdl.NewSalesHandler(queryService))

	// Khởi động server
	log := logger.GetAppLogger()
	address := global.ServerConfig.Address
	log.WithFields(map[string]interface{}{
		"address": address,
		"backend": queryService.Backend(),
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}
