package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy service báo cáo thanh toán
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"` // Địa chỉ server

	// MongoDB: mỗi department (revenue, cdma) đọc từ database/collection riêng
	MongoDB_ConnectionURI   string `env:"MONGODB_CONNECTION_URI,required"`                           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName_Revenue  string `env:"MONGODB_DBNAME_REVENUE,required"`                           // Database chứa giao dịch Revenue
	MongoDB_DBName_CDMA     string `env:"MONGODB_DBNAME_CDMA,required"`                              // Database chứa giao dịch CDMA
	MongoDB_ColName_Revenue string `env:"MONGODB_COLNAME_REVENUE" envDefault:"revenue_payment_reports"` // Collection giao dịch Revenue
	MongoDB_ColName_CDMA    string `env:"MONGODB_COLNAME_CDMA" envDefault:"cdma_payment_reports"`       // Collection giao dịch CDMA
	MongoDB_MaxPoolSize     int    `env:"MONGODB_MAX_POOL_SIZE" envDefault:"50"`                     // Số connection tối đa trong pool

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Báo cáo
	Report_QueryTimeout        int           `env:"REPORT_QUERY_TIMEOUT" envDefault:"30"`          // Timeout cho một lần đọc báo cáo (giây)
	Report_RevenueLookback     time.Duration `env:"REPORT_REVENUE_LOOKBACK" envDefault:"2h"`       // Khoảng lùi mặc định của Revenue khi không có startTime/endTime (vd: 2h, 90m)
	Report_EnforceTimeWindow   bool          `env:"REPORT_ENFORCE_TIME_WINDOW" envDefault:"false"` // Bật kiểm tra endTime > startTime và khoảng cách tối đa
	Report_MaxTimeWindowInHour int           `env:"REPORT_MAX_TIME_WINDOW" envDefault:"48"`        // Khoảng thời gian tối đa giữa startTime và endTime (giờ)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên dần cho tới khi gặp thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi parse biến môi trường vào Configuration.
// Khi chạy trong container thường không có file env, biến môi trường được truyền trực tiếp.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("load env file %s: %w", envPath, err)
			}
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
