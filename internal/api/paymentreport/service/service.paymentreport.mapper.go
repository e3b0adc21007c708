package paymentreportsvc

import (
	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	paymentreportmodels "ap_payment_reports/internal/api/paymentreport/models"
	"ap_payment_reports/internal/common"
)

// CDMAServiceName tên dịch vụ hiển thị cho mọi giao dịch CDMA (không dùng heading_msg)
const CDMAServiceName = "Know Your Dues"

// MapRevenueReport chuyển bản ghi Revenue sang báo cáo chuẩn
func MapRevenueReport(r paymentreportmodels.RevenuePaymentReport) paymentreportdto.PaymentReport {
	return paymentreportdto.PaymentReport{
		Department:              paymentreportdto.DepartmentRevenue,
		Service:                 r.ServiceName.String(),
		Amount:                  r.Amount.String(),
		Mobile:                  r.MobileNo.String(),
		Status:                  RevenueStatusFromCode(r.PaymentStatus.String()),
		Type:                    paymentreportdto.PaymentTypeUPI,
		OrderID:                 r.OrderID.String(),
		ReferenceID:             r.ReferenceID.String(),
		TransactionID:           r.TransactionID.String(),
		DepartmentTransactionID: r.TransactionIDPayment.String(),
		InitiatedOn:             stringOrEmpty(ToReportTime(r.CreateDate)),
		CompletedOn:             ToReportTime(r.UpdatedDate),
	}
}

// MapCDMAReport chuyển bản ghi CDMA sang báo cáo chuẩn.
// Bản ghi thiếu tr_create_response thì không có transactionId, trả về ErrRecordMapping.
func MapCDMAReport(r paymentreportmodels.CDMAPaymentReport) (paymentreportdto.PaymentReport, error) {
	if r.TrCreateResponse == nil {
		return paymentreportdto.PaymentReport{}, common.ErrRecordMapping.WithDetails(map[string]string{
			"department": string(paymentreportdto.DepartmentCDMA),
			"id":         r.ID.Hex(),
			"field":      "tr_create_response",
		})
	}

	subService := CDMASubService(r.ServiceCode.String())
	status, _ := CDMAStatusFromCode(r.TransStatus.String())

	return paymentreportdto.PaymentReport{
		Department:              paymentreportdto.DepartmentCDMA,
		Service:                 CDMAServiceName,
		SubService:              &subService,
		Status:                  status,
		Amount:                  r.Amount.String(),
		ConsumerID:              r.ConsumerID.String(),
		TransactionID:           r.TrCreateResponse.CFMSTRID.String(),
		DepartmentTransactionID: r.DeptTransactionID.String(),
		Mobile:                  r.MobileNo.String(),
		Type:                    paymentreportdto.PaymentTypeUPI,
		InitiatedOn:             stringOrEmpty(ToReportTime(r.CreatedDate)),
		CompletedOn:             ToReportTime(r.UpdatedDate),
	}, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
