// Package paymentreportdto chứa DTO cho domain báo cáo thanh toán (filter đầu vào, bản ghi báo cáo chuẩn).
package paymentreportdto

import (
	"strings"

	"ap_payment_reports/internal/utility"
)

// Department là phòng ban sở hữu nguồn dữ liệu giao dịch
type Department string

const (
	DepartmentRevenue Department = "revenue"
	DepartmentCDMA    Department = "cdma"
)

// SupportedDepartments danh sách department API chấp nhận
var SupportedDepartments = []Department{DepartmentRevenue, DepartmentCDMA}

// ParseDepartment chuẩn hóa department (không phân biệt hoa thường). ok = false nếu không hỗ trợ.
func ParseDepartment(s string) (Department, bool) {
	d := Department(strings.ToLower(strings.TrimSpace(s)))
	return d, utility.Contains(SupportedDepartments, d)
}

// PaymentStatus trạng thái chuẩn hiển thị trên báo cáo
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "Success"
	PaymentStatusFailed  PaymentStatus = "Failed"
	PaymentStatusPending PaymentStatus = "Pending"
)

// Từ khóa status client gửi lên khi lọc (luôn lowercase)
const (
	StatusKeywordSuccess = "success"
	StatusKeywordFailed  = "failed"
	StatusKeywordPending = "pending"
)

// StatusKeywords danh sách từ khóa status mà API chấp nhận ở tầng request.
// Từng department có thể hỗ trợ ít hơn (CDMA không có pending).
var StatusKeywords = []string{StatusKeywordSuccess, StatusKeywordFailed, StatusKeywordPending}

// PaymentTypeUPI là loại thanh toán duy nhất hiện có
const PaymentTypeUPI = "UPI"

// ReportFilterRequest filter cho GET (query) và POST (body) /payment-reports
type ReportFilterRequest struct {
	Department string `query:"department" json:"department" validate:"required,payment_department"`
	Service    string `query:"service" json:"service" validate:"omitempty,max=200"`
	Status     string `query:"status" json:"status" validate:"omitempty,payment_status"`
	StartTime  string `query:"startTime" json:"startTime"` // ISO-8601, vd: 2024-01-01T00:00:00Z
	EndTime    string `query:"endTime" json:"endTime"`     // ISO-8601
}

// ReportFilter tham số đã chuẩn hóa truyền xuống service. Chỉ sống trong một request.
// Correlation id đi theo context (logger.ContextWithCorrelationID), không nằm trong filter.
type ReportFilter struct {
	Department  Department
	ServiceName string
	Status      string // từ khóa lowercase: success|failed|pending, rỗng = không lọc
	StartTime   string
	EndTime     string
}

// ToFilter chuẩn hóa request thành ReportFilter
func (r ReportFilterRequest) ToFilter() ReportFilter {
	dep, _ := ParseDepartment(r.Department)
	return ReportFilter{
		Department:  dep,
		ServiceName: strings.TrimSpace(r.Service),
		Status:      strings.ToLower(strings.TrimSpace(r.Status)),
		StartTime:   strings.TrimSpace(r.StartTime),
		EndTime:     strings.TrimSpace(r.EndTime),
	}
}

// PaymentReport bản ghi báo cáo chuẩn, chung cho mọi department.
// Các field riêng của từng department để trống thì không xuất hiện trong JSON.
type PaymentReport struct {
	Department              Department    `json:"department"`
	Service                 string        `json:"service"`
	SubService              *string       `json:"subService,omitempty"` // chỉ CDMA
	Status                  PaymentStatus `json:"status,omitempty"`     // CDMA: code lạ thì bỏ trống
	Amount                  string        `json:"amount"`
	Mobile                  string        `json:"mobile"`
	OrderID                 string        `json:"orderId,omitempty"`     // chỉ Revenue
	ReferenceID             string        `json:"referenceId,omitempty"` // chỉ Revenue
	ConsumerID              string        `json:"consumerId,omitempty"`  // chỉ CDMA
	TransactionID           string        `json:"transactionId,omitempty"`
	DepartmentTransactionID string        `json:"departmentTransactionId,omitempty"`
	Type                    string        `json:"type"`
	InitiatedOn             string        `json:"initiatedOn"`
	CompletedOn             *string       `json:"completedOn,omitempty"`
}

// PaymentReportListResponse body trả về cho client
type PaymentReportListResponse struct {
	Records []PaymentReport `json:"records"`
	Count   int             `json:"count"`
	Status  string          `json:"status"`
}

// ResponseStatusSuccess giá trị field status khi thành công
const ResponseStatusSuccess = "SUCCESS"
