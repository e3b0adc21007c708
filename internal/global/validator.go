package global

import (
	"strings"

	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	"ap_payment_reports/internal/utility"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo validator và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("payment_department", validatePaymentDepartment)
	_ = Validate.RegisterValidation("payment_status", validatePaymentStatus)
}

// validatePaymentDepartment chỉ chấp nhận department đang hỗ trợ (không phân biệt hoa thường)
func validatePaymentDepartment(fl validator.FieldLevel) bool {
	_, ok := paymentreportdto.ParseDepartment(fl.Field().String())
	return ok
}

// validatePaymentStatus chỉ chấp nhận success|failed|pending (không phân biệt hoa thường)
func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return utility.Contains(paymentreportdto.StatusKeywords, value)
}
