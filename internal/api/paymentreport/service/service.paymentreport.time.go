package paymentreportsvc

import (
	"time"

	paymentreportmodels "ap_payment_reports/internal/api/paymentreport/models"
	"ap_payment_reports/internal/common"
	"ap_payment_reports/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// ReportTimezone timezone hiển thị thời gian trên báo cáo
const ReportTimezone = "Asia/Kolkata"

// istOffset UTC+5:30, Ấn Độ không có DST
const istOffset = 5*60*60 + 30*60

var reportLocation = utility.LoadLocation(ReportTimezone, istOffset)

// FormatReportTime đổi thời điểm sang giờ Asia/Kolkata, định dạng yyyy-MM-dd HH:mm:ss
func FormatReportTime(t time.Time) string {
	return t.In(reportLocation).Format(utility.DisplayDateTimeFormat)
}

// ToReportTime đổi timestamp lưu trong DB sang chuỗi hiển thị. Không có giá trị thì trả về nil.
func ToReportTime(ft paymentreportmodels.FlexTime) *string {
	if !ft.Valid {
		return nil
	}
	s := FormatReportTime(ft.Time)
	return &s
}

// timeRange parse startTime/endTime thành điều kiện $gte/$lte ở UTC.
// ok = false khi cả hai đều trống.
func timeRange(startTime, endTime string) (rng bson.M, ok bool, err error) {
	if startTime == "" && endTime == "" {
		return nil, false, nil
	}

	rng = bson.M{}
	if startTime != "" {
		start, err := utility.ParseISOTime(startTime)
		if err != nil {
			return nil, false, common.ErrInvalidTime.WithCause(err).WithDetails(map[string]string{"startTime": startTime})
		}
		rng["$gte"] = start
	}
	if endTime != "" {
		end, err := utility.ParseISOTime(endTime)
		if err != nil {
			return nil, false, common.ErrInvalidTime.WithCause(err).WithDetails(map[string]string{"endTime": endTime})
		}
		rng["$lte"] = end
	}
	return rng, true, nil
}

// ValidateTimeWindow kiểm tra endTime > startTime và khoảng cách nhỏ hơn maxWindow.
// Mặc định không bật (REPORT_ENFORCE_TIME_WINDOW), handler chỉ gọi khi cấu hình cho phép.
func ValidateTimeWindow(startTime, endTime string, maxWindow time.Duration) error {
	start, err := utility.ParseISOTime(startTime)
	if err != nil {
		return common.ErrInvalidTimeWindow.WithCause(err)
	}
	end, err := utility.ParseISOTime(endTime)
	if err != nil {
		return common.ErrInvalidTimeWindow.WithCause(err)
	}
	if !end.After(start) || end.Sub(start) >= maxWindow {
		return common.ErrInvalidTimeWindow.WithDetails(map[string]string{
			"startTime": startTime,
			"endTime":   endTime,
		})
	}
	return nil
}
