package main

import (
	"ap_payment_reports/config"
	"ap_payment_reports/internal/database"
	"ap_payment_reports/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initValidator đăng ký các custom validator (payment_department, payment_status)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ file env / biến môi trường
func initConfig() {
	var err error
	global.MongoDB_ServerConfig, err = config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB mở kết nối MongoDB dùng chung cho mọi department
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize MongoDB: %v", err)
	}
	logrus.Info("Initialized MongoDB")
}
