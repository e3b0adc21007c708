// Package paymentreportsvc chứa service báo cáo thanh toán: build query theo department,
// đọc bản ghi gốc và chuyển sang báo cáo chuẩn.
package paymentreportsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	paymentreportmodels "ap_payment_reports/internal/api/paymentreport/models"
	"ap_payment_reports/internal/common"
	"ap_payment_reports/internal/global"
	"ap_payment_reports/internal/logger"

	"github.com/sirupsen/logrus"
)

// PaymentReportService đọc báo cáo thanh toán của các department. Không giữ state giữa các request.
type PaymentReportService struct {
	revenueStore    RecordStore[paymentreportmodels.RevenuePaymentReport]
	cdmaStore       RecordStore[paymentreportmodels.CDMAPaymentReport]
	revenueLookback time.Duration
	now             func() time.Time
}

// Option tùy chỉnh PaymentReportService
type Option func(*PaymentReportService)

// WithRevenueLookback đổi khoảng lùi mặc định của Revenue
func WithRevenueLookback(d time.Duration) Option {
	return func(s *PaymentReportService) {
		if d > 0 {
			s.revenueLookback = d
		}
	}
}

// WithClock thay đồng hồ (dùng trong test)
func WithClock(now func() time.Time) Option {
	return func(s *PaymentReportService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewPaymentReportServiceWithStores tạo service với store cho trước
func NewPaymentReportServiceWithStores(
	revenueStore RecordStore[paymentreportmodels.RevenuePaymentReport],
	cdmaStore RecordStore[paymentreportmodels.CDMAPaymentReport],
	opts ...Option,
) *PaymentReportService {
	s := &PaymentReportService{
		revenueStore:    revenueStore,
		cdmaStore:       cdmaStore,
		revenueLookback: DefaultRevenueLookback,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewPaymentReportService tạo service dùng collection của từng department trong registry
func NewPaymentReportService(opts ...Option) (*PaymentReportService, error) {
	revenueColl, ok := global.RegistryCollections.Get(string(paymentreportdto.DepartmentRevenue))
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection cho department %s", paymentreportdto.DepartmentRevenue)
	}
	cdmaColl, ok := global.RegistryCollections.Get(string(paymentreportdto.DepartmentCDMA))
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection cho department %s", paymentreportdto.DepartmentCDMA)
	}

	if cfg := global.MongoDB_ServerConfig; cfg != nil && cfg.Report_RevenueLookback > 0 {
		opts = append([]Option{WithRevenueLookback(cfg.Report_RevenueLookback)}, opts...)
	}

	return NewPaymentReportServiceWithStores(
		NewMongoRecordStore[paymentreportmodels.RevenuePaymentReport](revenueColl),
		NewMongoRecordStore[paymentreportmodels.CDMAPaymentReport](cdmaColl),
		opts...,
	), nil
}

// GetPaymentReports chọn pipeline theo department và trả về danh sách báo cáo chuẩn.
// Lỗi ở bất kỳ bước nào (query, store, mapping) đều hủy cả lần gọi, không trả kết quả dở dang.
func (s *PaymentReportService) GetPaymentReports(ctx context.Context, filter paymentreportdto.ReportFilter) ([]paymentreportdto.PaymentReport, error) {
	switch paymentreportdto.Department(strings.ToLower(string(filter.Department))) {
	case paymentreportdto.DepartmentRevenue:
		return s.getRevenueReports(ctx, filter)
	case paymentreportdto.DepartmentCDMA:
		return s.getCDMAReports(ctx, filter)
	default:
		return nil, common.ErrUnknownDepartment.WithDetails(map[string]string{"department": string(filter.Department)})
	}
}

func (s *PaymentReportService) getRevenueReports(ctx context.Context, filter paymentreportdto.ReportFilter) ([]paymentreportdto.PaymentReport, error) {
	query, err := BuildRevenueQuery(filter, s.now(), s.revenueLookback)
	if err != nil {
		logFailure(ctx, "getRevenueReports", "Error in getting reports for the Revenue Services", err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"department": paymentreportdto.DepartmentRevenue,
		"query":      query,
	}).Info("Payment report query")

	docs, err := s.revenueStore.Find(ctx, query)
	if err != nil {
		logFailure(ctx, "getRevenueReports", "Error in getting reports for the Revenue Services", err)
		return nil, err
	}

	reports := make([]paymentreportdto.PaymentReport, 0, len(docs))
	for _, doc := range docs {
		reports = append(reports, MapRevenueReport(doc))
	}
	return reports, nil
}

func (s *PaymentReportService) getCDMAReports(ctx context.Context, filter paymentreportdto.ReportFilter) ([]paymentreportdto.PaymentReport, error) {
	query, err := BuildCDMAQuery(filter)
	if err != nil {
		logFailure(ctx, "getCDMAReports", "Error in getting reports for the CDMA Services", err)
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"department": paymentreportdto.DepartmentCDMA,
		"query":      query,
	}).Info("Payment report query")

	docs, err := s.cdmaStore.Find(ctx, query)
	if err != nil {
		logFailure(ctx, "getCDMAReports", "Error in getting reports for the CDMA Services", err)
		return nil, err
	}

	reports := make([]paymentreportdto.PaymentReport, 0, len(docs))
	for _, doc := range docs {
		report, err := MapCDMAReport(doc)
		if err != nil {
			logFailure(ctx, "getCDMAReports", "Error in getting reports for the CDMA Services", err)
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// logFailure ghi lỗi vào error logger, kèm correlation id lấy từ ctx
func logFailure(ctx context.Context, function, description string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"function":      function,
		"description":   description,
		"correlationId": logger.CorrelationIDFromContext(ctx),
	}).Error(description)
}
