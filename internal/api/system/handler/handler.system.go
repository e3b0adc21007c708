// Package systemhdl chứa các endpoint vận hành (health check).
package systemhdl

import (
	"context"
	"time"

	"ap_payment_reports/internal/api/middleware"
	"ap_payment_reports/internal/common"

	"github.com/gofiber/fiber/v3"
)

// Pinger kiểm tra kết nối tới database
type Pinger func(ctx context.Context) error

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	ping Pinger
}

// NewSystemHandler tạo SystemHandler. ping = nil nghĩa là database chưa khởi tạo.
func NewSystemHandler(ping Pinger) *SystemHandler {
	return &SystemHandler{ping: ping}
}

// HandleHealth kiểm tra trạng thái API và kết nối MongoDB
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Failure 503 {object} map[string]interface{} "Hệ thống đang gặp sự cố"
// @Router /system/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	if h.ping == nil {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
		return middleware.JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Database chưa được khởi tạo",
			"data":    healthData,
			"status":  "error",
		})
	}

	if err := h.ping(c.Context()); err != nil {
		healthData["status"] = "degraded"
		services["database"] = "error"
		healthData["database_error"] = err.Error()
		return middleware.JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Hệ thống đang gặp sự cố",
			"data":    healthData,
			"status":  "error",
		})
	}
	services["database"] = "ok"

	return middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": "Thành công",
		"data":    healthData,
		"status":  "success",
	})
}
