package paymentreportsvc

import (
	"strings"

	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	paymentreportmodels "ap_payment_reports/internal/api/paymentreport/models"
	"ap_payment_reports/internal/common"
)

// Bảng mã trạng thái. Chỉ đọc, không sửa lúc chạy.
var (
	revenueStatusCodes = map[string]string{
		paymentreportdto.StatusKeywordSuccess: paymentreportmodels.RevenueStatusCodeSuccess,
		paymentreportdto.StatusKeywordFailed:  paymentreportmodels.RevenueStatusCodeFailed,
		paymentreportdto.StatusKeywordPending: paymentreportmodels.RevenueStatusCodePending,
	}
	revenueStatusByCode = map[string]paymentreportdto.PaymentStatus{
		paymentreportmodels.RevenueStatusCodeSuccess: paymentreportdto.PaymentStatusSuccess,
		paymentreportmodels.RevenueStatusCodeFailed:  paymentreportdto.PaymentStatusFailed,
		paymentreportmodels.RevenueStatusCodePending: paymentreportdto.PaymentStatusPending,
	}

	cdmaStatusCodes = map[string]string{
		paymentreportdto.StatusKeywordSuccess: paymentreportmodels.CDMAStatusCodeSuccess,
		paymentreportdto.StatusKeywordFailed:  paymentreportmodels.CDMAStatusCodeFailed,
	}
	cdmaStatusByCode = map[string]paymentreportdto.PaymentStatus{
		paymentreportmodels.CDMAStatusCodeSuccess: paymentreportdto.PaymentStatusSuccess,
		paymentreportmodels.CDMAStatusCodeFailed:  paymentreportdto.PaymentStatusFailed,
	}

	cdmaSubServices = map[string]string{
		"wt":   "Water Tax Dues",
		"pt":   "Property Tax Dues",
		"vlt":  "Vacant Land Dues",
		"stax": "Sewerage Dues",
		"tl":   "Trade License Dues",
	}
)

// RevenueStatusCode đổi từ khóa status (success|failed|pending) sang mã gốc của Revenue
func RevenueStatusCode(status string) (string, error) {
	code, ok := revenueStatusCodes[status]
	if !ok {
		return "", common.ErrInvalidStatus.WithDetails(map[string]string{
			"department": string(paymentreportdto.DepartmentRevenue),
			"status":     status,
		})
	}
	return code, nil
}

// RevenueStatusFromCode đổi mã gốc của Revenue sang trạng thái chuẩn.
// Mã lạ trả về Failed, không báo lỗi.
func RevenueStatusFromCode(code string) paymentreportdto.PaymentStatus {
	if status, ok := revenueStatusByCode[code]; ok {
		return status
	}
	return paymentreportdto.PaymentStatusFailed
}

// CDMAStatusCode đổi từ khóa status (success|failed) sang mã gốc của CDMA. CDMA không có pending.
func CDMAStatusCode(status string) (string, error) {
	code, ok := cdmaStatusCodes[status]
	if !ok {
		return "", common.ErrInvalidStatus.WithDetails(map[string]string{
			"department": string(paymentreportdto.DepartmentCDMA),
			"status":     status,
		})
	}
	return code, nil
}

// CDMAStatusFromCode đổi mã gốc của CDMA sang trạng thái chuẩn.
// Khác Revenue: mã lạ trả về ok = false và báo cáo để trống status.
func CDMAStatusFromCode(code string) (paymentreportdto.PaymentStatus, bool) {
	status, ok := cdmaStatusByCode[code]
	return status, ok
}

// CDMASubService trả về tên dịch vụ con theo service code (không phân biệt hoa thường), code lạ trả về ""
func CDMASubService(code string) string {
	return cdmaSubServices[strings.ToLower(strings.TrimSpace(code))]
}
