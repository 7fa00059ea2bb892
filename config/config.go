package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// SalesBackend quyết định executor phục vụ truy vấn: "memory" (nạp CSV vào RAM)
// hoặc "mongo" (đẩy filter/sort/paginate xuống MongoDB).
type Configuration struct {
	Address      string `env:"ADDRESS" envDefault:":8080"`        // Địa chỉ server
	SalesBackend string `env:"SALES_BACKEND" envDefault:"memory"` // Backend truy vấn: memory | mongo

	// MongoDB (bắt buộc khi SALES_BACKEND=mongo)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI" envDefault:"mongodb://localhost:27017"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"sales_insight"`                    // Tên cơ sở dữ liệu

	// Nguồn dữ liệu CSV (dùng cho backend memory và lệnh seed)
	SalesCSVPath string `env:"SALES_CSV_PATH" envDefault:"data/sales_data.csv"` // Đường dẫn file CSV dữ liệu bán hàng

	// Giới hạn thời gian thực thi một truy vấn (giây); quá hạn trả lỗi timeout riêng
	QueryTimeoutSeconds int `env:"QUERY_TIMEOUT_SECONDS" envDefault:"30"`

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env (nếu tìm thấy) rồi parse từ biến môi trường
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// File env là optional: mọi giá trị đều có default hoặc set trực tiếp qua env
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	err := env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
