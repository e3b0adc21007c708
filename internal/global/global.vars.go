package global

import (
	"ap_payment_reports/config"
	"ap_payment_reports/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// Các biến toàn cục, khởi tạo một lần lúc start server (cmd/server/init.go)
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server

// RegistryCollections chứa collection nguồn của từng department, key là tên department
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
