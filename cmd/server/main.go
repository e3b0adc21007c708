package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"ap_payment_reports/internal/database"
	"ap_payment_reports/internal/global"
	"ap_payment_reports/internal/logger"
)

// initLogger khởi tạo logger cho toàn bộ ứng dụng, cấu hình đọc từ biến môi trường LOG_*
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server, dừng khi nhận SIGINT/SIGTERM
func main_thread() {
	log := logger.GetAppLogger()

	app, err := InitFiberApp()
	if err != nil {
		log.Fatalf("Failed to initialize routes: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error shutting down Fiber")
		}
	}()

	address := global.MongoDB_ServerConfig.Address
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting server with HTTP")

	if err := app.Listen(address, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	defer logger.Close()

	// Khởi tạo các biến toàn cục
	InitGlobal()
	defer func() {
		_ = database.CloseInstance(global.MongoDB_Session)
	}()

	// Khởi tạo registry collection theo department
	InitRegistry()

	main_thread()
}
