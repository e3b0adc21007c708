package paymentreporthdl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ap_payment_reports/internal/api/middleware"
	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	"ap_payment_reports/internal/common"
	"ap_payment_reports/internal/global"
	"ap_payment_reports/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct {
	records       []paymentreportdto.PaymentReport
	err           error
	calls         int
	lastFilter    paymentreportdto.ReportFilter
	correlationID string
	deadline      bool
}

func (f *fakeReportService) GetPaymentReports(ctx context.Context, filter paymentreportdto.ReportFilter) ([]paymentreportdto.PaymentReport, error) {
	f.calls++
	f.lastFilter = filter
	f.correlationID = logger.CorrelationIDFromContext(ctx)
	_, f.deadline = ctx.Deadline()
	return f.records, f.err
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func newTestApp(svc ReportService, cfg HandlerConfig) *fiber.App {
	global.InitValidator()
	h := NewPaymentReportHandlerWithService(svc, cfg)

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/payment-reports", h.HandleGetReports)
	app.Post("/payment-reports", h.HandlePostReports)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleGetReports_Success(t *testing.T) {
	svc := &fakeReportService{records: []paymentreportdto.PaymentReport{{
		Department:  paymentreportdto.DepartmentRevenue,
		Service:     "Electricity",
		Amount:      "100",
		Status:      paymentreportdto.PaymentStatusSuccess,
		Type:        paymentreportdto.PaymentTypeUPI,
		InitiatedOn: "2024-01-01 05:30:00",
	}}}
	app := newTestApp(svc, HandlerConfig{QueryTimeout: 5 * time.Second})

	resp := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/payment-reports?department=Revenue&service=Electricity&status=SUCCESS", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	var body paymentreportdto.PaymentReportListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "SUCCESS", body.Status)
	assert.Equal(t, svc.records, body.Records)

	assert.Equal(t, paymentreportdto.DepartmentRevenue, svc.lastFilter.Department)
	assert.Equal(t, "success", svc.lastFilter.Status)
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), svc.correlationID)
	assert.True(t, svc.deadline)
}

func TestHandleGetReports_EmptyResult(t *testing.T) {
	svc := &fakeReportService{records: []paymentreportdto.PaymentReport{}}
	app := newTestApp(svc, HandlerConfig{})

	resp := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/payment-reports?department=cdma", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []interface{}{}, body["records"])
	assert.EqualValues(t, 0, body["count"])
	assert.False(t, svc.deadline)
}

func TestHandleGetReports_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		status int
		code   string
	}{
		{"unknown department", "department=pharmacy", 402, common.ErrCodeReportDepartment.Code},
		{"missing department", "status=success", 402, common.ErrCodeReportDepartment.Code},
		{"unknown status", "department=revenue&status=urgent", 403, common.ErrCodeReportStatus.Code},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeReportService{}
			app := newTestApp(svc, HandlerConfig{})

			resp := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/payment-reports?"+tc.query, nil))
			assert.Equal(t, tc.status, resp.StatusCode)

			var body errorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, "error", body.Status)
			assert.Zero(t, svc.calls)
		})
	}
}

func TestHandleGetReports_ServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid time", common.ErrInvalidTime, 400},
		{"store failure", common.ErrStoreFailure, 500},
		{"cdma pending", common.ErrInvalidStatus, 403},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&fakeReportService{err: tc.err}, HandlerConfig{})
			resp := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/payment-reports?department=cdma", nil))
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestHandleGetReports_TimeWindow(t *testing.T) {
	svc := &fakeReportService{records: []paymentreportdto.PaymentReport{}}
	app := newTestApp(svc, HandlerConfig{EnforceTimeWindow: true, MaxTimeWindow: 48 * time.Hour})

	resp := doRequest(t, app, httptest.NewRequest(fiber.MethodGet,
		"/payment-reports?department=revenue&startTime=2024-01-05T00:00:00Z&endTime=2024-01-01T00:00:00Z", nil))
	assert.Equal(t, 404, resp.StatusCode)
	assert.Zero(t, svc.calls)

	resp = doRequest(t, app, httptest.NewRequest(fiber.MethodGet,
		"/payment-reports?department=revenue&startTime=2024-01-01T00:00:00Z&endTime=2024-01-02T00:00:00Z", nil))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, svc.calls)
}

func TestHandlePostReports(t *testing.T) {
	svc := &fakeReportService{records: []paymentreportdto.PaymentReport{}}
	app := newTestApp(svc, HandlerConfig{})

	req := httptest.NewRequest(fiber.MethodPost, "/payment-reports",
		strings.NewReader(`{"department":"cdma","service":"Know Your Dues","status":"failed","startTime":"2024-01-01T00:00:00Z"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderXRequestID, "abcT123")

	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abcT123", resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, paymentreportdto.ReportFilter{
		Department:  paymentreportdto.DepartmentCDMA,
		ServiceName: "Know Your Dues",
		Status:      "failed",
		StartTime:   "2024-01-01T00:00:00Z",
	}, svc.lastFilter)
	assert.Equal(t, "abcT123", svc.correlationID)
}

func TestHandlePostReports_MalformedBody(t *testing.T) {
	svc := &fakeReportService{}
	app := newTestApp(svc, HandlerConfig{})

	req := httptest.NewRequest(fiber.MethodPost, "/payment-reports", strings.NewReader(`{"department":`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, svc.calls)
}
