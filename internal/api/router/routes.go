package router

import (
	"context"

	paymentreporthdl "ap_payment_reports/internal/api/paymentreport/handler"
	paymentreportrouter "ap_payment_reports/internal/api/paymentreport/router"
	systemhdl "ap_payment_reports/internal/api/system/handler"
	"ap_payment_reports/internal/database"
	"ap_payment_reports/internal/global"

	"github.com/gofiber/fiber/v3"
)

const apiPrefix = "/api/v1"

// SetupRoutes đăng ký toàn bộ route của service vào app
func SetupRoutes(app *fiber.App) error {
	v1 := app.Group(apiPrefix)

	var ping systemhdl.Pinger
	if client := global.MongoDB_Session; client != nil {
		ping = func(ctx context.Context) error { return database.Ping(ctx, client) }
	}
	v1.Get("/system/health", systemhdl.NewSystemHandler(ping).HandleHealth)

	reportHandler, err := paymentreporthdl.NewPaymentReportHandler()
	if err != nil {
		return err
	}
	paymentreportrouter.Register(v1, reportHandler)
	return nil
}
