// Package logger cung cấp hệ thống logging tập trung cho toàn bộ ứng dụng.
// Mỗi subsystem có một logger riêng theo tên (app, query, seed), ghi đồng thời
// ra file (có rotation qua lumberjack) và stdout thông qua AsyncHook.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig chứa cấu hình logging
type LogConfig struct {
	Level      string // Mức log: debug, info, warn, error
	Dir        string // Thư mục chứa file log
	MaxSizeMB  int    // Kích thước tối đa mỗi file log (MB) trước khi rotate
	MaxBackups int    // Số file log cũ giữ lại
	MaxAgeDays int    // Số ngày giữ file log cũ
	ToStdout   bool   // Có ghi ra stdout song song không
}

// DefaultConfig trả về cấu hình mặc định, cho phép override qua environment variables
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Dir:        "logs",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		ToStdout:   true,
	}
	if lv := os.Getenv("LOG_LEVEL"); lv != "" {
		cfg.Level = lv
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Dir = dir
	}
	return cfg
}

var (
	// loggers map lưu các logger instances theo tên
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging hiện hành
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// Phải gọi trước GetLogger/GetAppLogger; truyền nil để dùng cấu hình mặc định.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return nil
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa có.
// Logger ghi ra file logs/<name>.log (rotate bằng lumberjack) và stdout.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if log, ok := loggers[name]; ok {
		return log
	}

	if config == nil {
		config = DefaultConfig()
	}

	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	// Ghi qua AsyncHook để không block request handling
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(config.Dir, name+".log"),
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   true,
	}
	writers := []io.Writer{fileWriter}
	if config.ToStdout {
		writers = append(writers, os.Stdout)
	}
	log.SetOutput(io.Discard)
	log.AddHook(NewAsyncHookWithWriters(writers, 1000))

	loggers[name] = log
	return log
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetQueryLogger trả về logger cho query engine (đếm/trang/thống kê)
func GetQueryLogger() *logrus.Logger {
	return GetLogger("query")
}
