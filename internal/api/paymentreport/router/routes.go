package router

import (
	paymentreporthdl "ap_payment_reports/internal/api/paymentreport/handler"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký route báo cáo thanh toán vào nhóm /api/v1.
// GET đọc filter từ query string, POST đọc từ JSON body.
func Register(v1 fiber.Router, h *paymentreporthdl.PaymentReportHandler) {
	v1.Get("/payment-reports", h.HandleGetReports)
	v1.Post("/payment-reports", h.HandlePostReports)
}
