package common

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	StatusOK = 200 // Thành công

	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusPaymentRequired = 402 // Department không hợp lệ (giữ nguyên contract cũ của API báo cáo)
	StatusForbidden       = 403 // Status không hợp lệ (giữ nguyên contract cũ của API báo cáo)
	StatusNotFound        = 404 // Khoảng thời gian không hợp lệ
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Timeout
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: RPT_001)
	Category    string // Phân loại lỗi
	SubCategory string // Phân loại con
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "System", SubCategory: "Internal", Description: "Lỗi hệ thống nội bộ"}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: "Validation", SubCategory: "Input", Description: "Lỗi dữ liệu đầu vào"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: "Validation", SubCategory: "Format", Description: "Lỗi định dạng dữ liệu"}

	// Report Errors (RPT_xxx)
	ErrCodeReportDepartment = ErrorCode{Code: "RPT_001", Category: "Report", SubCategory: "Department", Description: "Department không được hỗ trợ"}
	ErrCodeReportStatus     = ErrorCode{Code: "RPT_002", Category: "Report", SubCategory: "Status", Description: "Trạng thái thanh toán không hợp lệ"}
	ErrCodeReportTime       = ErrorCode{Code: "RPT_003", Category: "Report", SubCategory: "Time", Description: "Thời gian lọc không hợp lệ"}
	ErrCodeReportMapping    = ErrorCode{Code: "RPT_004", Category: "Report", SubCategory: "Mapping", Description: "Không chuyển được bản ghi sang báo cáo chuẩn"}
	ErrCodeReportTimeWindow = ErrorCode{Code: "RPT_005", Category: "Report", SubCategory: "TimeWindow", Description: "Khoảng thời gian lọc vượt giới hạn"}

	// Database Errors (DB_xxx)
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "Database", SubCategory: "Connection", Description: "Lỗi kết nối cơ sở dữ liệu"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "Database", SubCategory: "Query", Description: "Lỗi truy vấn dữ liệu"}

	ErrCodeBusinessOperation = ErrorCode{Code: "BIZ_002", Category: "Business", SubCategory: "Operation", Description: "Lỗi thao tác nghiệp vụ"}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
	Cause      error     // Lỗi gốc (nếu có)
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap trả về lỗi gốc để errors.Is/As đi tiếp xuống driver error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is so khớp theo mã lỗi, nên bản sao có Details/Cause khác vẫn match với lỗi gốc
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code.Code == t.Code.Code
}

// WithDetails trả về bản sao của lỗi kèm details
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// WithCause trả về bản sao của lỗi kèm lỗi gốc
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.Cause = cause
	return &cp
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Lỗi của API báo cáo thanh toán. Message giữ nguyên như client đang nhận.
var (
	ErrUnknownDepartment = NewError(ErrCodeReportDepartment, "Invalid department!. Please send the valid department", StatusPaymentRequired, nil)
	ErrInvalidStatus     = NewError(ErrCodeReportStatus, "Invalid Status!. Please send the valid status.", StatusForbidden, nil)
	ErrInvalidTime       = NewError(ErrCodeReportTime, "Invalid startTime or endTime. Please send an ISO-8601 date", StatusBadRequest, nil)
	ErrInvalidTimeWindow = NewError(ErrCodeReportTimeWindow, "Invalid Date!. End time must be greater than the start time. and difference must be less than 2 days", StatusNotFound, nil)
	ErrRecordMapping     = NewError(ErrCodeReportMapping, "Failed to map payment record", StatusInternalServerError, nil)

	ErrInvalidInput = NewError(ErrCodeValidationInput, "Invalid request payload", StatusBadRequest, nil)

	// ErrStoreFailure là lỗi đọc từ backing store; lỗi driver gốc nằm trong Cause
	ErrStoreFailure = NewError(ErrCodeDatabaseQuery, "Error in getting reports from the store", StatusInternalServerError, nil)
	ErrConnection   = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
)

// ConvertMongoError chuyển lỗi MongoDB sang lỗi hệ thống, giữ lỗi gốc trong Cause.
// Timeout trả 504, mất kết nối trả ErrConnection (503), còn lại là ErrStoreFailure.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Đã là lỗi hệ thống thì giữ nguyên
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		storeErr := ErrStoreFailure.WithCause(err).WithDetails("timeout")
		storeErr.StatusCode = StatusGatewayTimeout
		return storeErr
	case mongo.IsNetworkError(err), errors.Is(err, mongo.ErrClientDisconnected):
		return ErrConnection.WithCause(err).WithDetails("network")
	}
	return ErrStoreFailure.WithCause(err)
}
