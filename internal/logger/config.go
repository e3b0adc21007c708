package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env"
)

// LogConfig chứa cấu hình cho hệ thống logging.
// Giá trị mặc định đặt trong DefaultConfig (phụ thuộc GO_ENV), biến LOG_* nếu có sẽ ghi đè.
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE"`    // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS"` // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS"`    // Nén file cũ

	// Log Paths
	LogPath   string `env:"LOG_PATH"`
	AppFile   string `env:"LOG_APP_FILE"`
	ErrorFile string `env:"LOG_ERROR_FILE"`

	// Kích thước buffer của async hook
	BufferSize int `env:"LOG_BUFFER_SIZE"`
}

// DefaultConfig trả về cấu hình mặc định theo GO_ENV, có override từ biến môi trường LOG_*
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "stdout",
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   true,
		LogPath:    "./logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
		BufferSize: 1000,
	}

	// Development: log text, mức debug
	if goEnv := os.Getenv("GO_ENV"); goEnv == "" || goEnv == "development" {
		cfg.Level = "debug"
		cfg.Format = "text"
	}

	if err := env.Parse(cfg); err != nil {
		// Logger chưa sẵn sàng nên in thẳng ra stderr, giữ cấu hình mặc định
		fmt.Fprintf(os.Stderr, "Invalid LOG_* environment, using defaults: %v\n", err)
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	return cfg
}
