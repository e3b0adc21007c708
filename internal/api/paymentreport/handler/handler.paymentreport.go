// Package paymentreporthdl chứa HTTP handler cho API báo cáo thanh toán.
package paymentreporthdl

import (
	"context"
	"errors"
	"time"

	"ap_payment_reports/internal/api/middleware"
	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	paymentreportsvc "ap_payment_reports/internal/api/paymentreport/service"
	"ap_payment_reports/internal/common"
	"ap_payment_reports/internal/global"
	"ap_payment_reports/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ReportService nguồn báo cáo mà handler cần
type ReportService interface {
	GetPaymentReports(ctx context.Context, filter paymentreportdto.ReportFilter) ([]paymentreportdto.PaymentReport, error)
}

// HandlerConfig tham số chạy của handler
type HandlerConfig struct {
	QueryTimeout      time.Duration // 0 = không giới hạn
	EnforceTimeWindow bool
	MaxTimeWindow     time.Duration
}

// PaymentReportHandler xử lý GET/POST /payment-reports
type PaymentReportHandler struct {
	service ReportService
	cfg     HandlerConfig
}

// NewPaymentReportHandlerWithService tạo handler với service và cấu hình cho trước
func NewPaymentReportHandlerWithService(service ReportService, cfg HandlerConfig) *PaymentReportHandler {
	if cfg.MaxTimeWindow <= 0 {
		cfg.MaxTimeWindow = 48 * time.Hour
	}
	return &PaymentReportHandler{service: service, cfg: cfg}
}

// NewPaymentReportHandler tạo handler dùng collection trong registry và cấu hình server
func NewPaymentReportHandler() (*PaymentReportHandler, error) {
	service, err := paymentreportsvc.NewPaymentReportService()
	if err != nil {
		return nil, err
	}

	cfg := HandlerConfig{}
	if c := global.MongoDB_ServerConfig; c != nil {
		cfg.QueryTimeout = time.Duration(c.Report_QueryTimeout) * time.Second
		cfg.EnforceTimeWindow = c.Report_EnforceTimeWindow
		cfg.MaxTimeWindow = time.Duration(c.Report_MaxTimeWindowInHour) * time.Hour
	}
	return NewPaymentReportHandlerWithService(service, cfg), nil
}

// HandleGetReports lọc báo cáo theo query string
// @Summary Báo cáo thanh toán
// @Param department query string true "revenue | cdma"
// @Param service query string false "Tên dịch vụ"
// @Param status query string false "success | failed | pending"
// @Param startTime query string false "ISO-8601"
// @Param endTime query string false "ISO-8601"
// @Success 200 {object} paymentreportdto.PaymentReportListResponse
// @Router /payment-reports [get]
func (h *PaymentReportHandler) HandleGetReports(c fiber.Ctx) error {
	var req paymentreportdto.ReportFilterRequest
	if err := c.Bind().Query(&req); err != nil {
		return middleware.HandleErrorResponse(c, common.ErrInvalidInput.WithCause(err))
	}
	return h.handleReports(c, req)
}

// HandlePostReports lọc báo cáo theo JSON body
// @Router /payment-reports [post]
func (h *PaymentReportHandler) HandlePostReports(c fiber.Ctx) error {
	var req paymentreportdto.ReportFilterRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.HandleErrorResponse(c, common.ErrInvalidInput.WithCause(err))
		}
	}
	return h.handleReports(c, req)
}

func (h *PaymentReportHandler) handleReports(c fiber.Ctx, req paymentreportdto.ReportFilterRequest) error {
	started := time.Now()
	correlationID := middleware.CorrelationID(c)
	log := logger.WithCorrelation(correlationID)

	log.WithFields(logrus.Fields{
		"department": req.Department,
		"service":    req.Service,
		"status":     req.Status,
		"startTime":  req.StartTime,
		"endTime":    req.EndTime,
	}).Info("Incoming report request")

	if err := validateRequest(req); err != nil {
		log.WithError(err).Warn("Report request rejected")
		return middleware.HandleErrorResponse(c, err)
	}

	filter := req.ToFilter()
	if h.cfg.EnforceTimeWindow {
		if err := paymentreportsvc.ValidateTimeWindow(filter.StartTime, filter.EndTime, h.cfg.MaxTimeWindow); err != nil {
			log.WithError(err).Warn("Report request rejected")
			return middleware.HandleErrorResponse(c, err)
		}
	}

	ctx := logger.ContextWithCorrelationID(c.Context(), correlationID)
	if h.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.QueryTimeout)
		defer cancel()
	}

	records, err := h.service.GetPaymentReports(ctx, filter)
	if err != nil {
		return middleware.HandleErrorResponse(c, err)
	}

	log.WithFields(logrus.Fields{
		"department":  filter.Department,
		"documents":   len(records),
		"endTimeInMS": time.Since(started).Milliseconds(),
	}).Info("Report request resolved")

	c.Set(fiber.HeaderXRequestID, correlationID)
	return middleware.JSONResponse(c, common.StatusOK, paymentreportdto.PaymentReportListResponse{
		Records: records,
		Count:   len(records),
		Status:  paymentreportdto.ResponseStatusSuccess,
	})
}

// validateRequest kiểm tra request bằng validator, lỗi department/status trả về mã riêng (402/403)
func validateRequest(req paymentreportdto.ReportFilterRequest) error {
	err := global.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return common.ErrInvalidInput.WithCause(err)
	}

	for _, fe := range validationErrs {
		if fe.Field() == "Department" {
			return common.ErrUnknownDepartment.WithDetails(map[string]string{"department": req.Department})
		}
	}
	for _, fe := range validationErrs {
		if fe.Field() == "Status" {
			return common.ErrInvalidStatus.WithDetails(map[string]string{"status": req.Status})
		}
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		details[fe.Field()] = fe.Tag()
	}
	return common.ErrInvalidInput.WithDetails(details)
}
