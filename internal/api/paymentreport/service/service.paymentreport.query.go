package paymentreportsvc

import (
	"time"

	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	paymentreportmodels "ap_payment_reports/internal/api/paymentreport/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DefaultRevenueLookback khoảng lùi mặc định của Revenue khi client không gửi startTime/endTime
const DefaultRevenueLookback = 2 * time.Hour

// BuildRevenueQuery build filter MongoDB cho collection Revenue.
//   - service: so khớp chính xác servicename
//   - status: đổi sang payment_status, status lạ trả về ErrInvalidStatus
//   - startTime/endTime: có bên nào thì lọc createdate theo bên đó; không có cả hai thì lấy từ now-lookback
func BuildRevenueQuery(filter paymentreportdto.ReportFilter, now time.Time, lookback time.Duration) (bson.M, error) {
	query := bson.M{}

	if filter.ServiceName != "" {
		query[paymentreportmodels.RevenueFieldServiceName] = filter.ServiceName
	}

	if filter.Status != "" {
		code, err := RevenueStatusCode(filter.Status)
		if err != nil {
			return nil, err
		}
		query[paymentreportmodels.RevenueFieldPaymentStatus] = code
	}

	rng, ok, err := timeRange(filter.StartTime, filter.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		if lookback <= 0 {
			lookback = DefaultRevenueLookback
		}
		rng = bson.M{"$gte": now.Add(-lookback).UTC()}
	}
	query[paymentreportmodels.RevenueFieldCreateDate] = rng

	return query, nil
}

// BuildCDMAQuery build filter MongoDB cho collection CDMA.
// Khác Revenue: không có startTime/endTime thì không lọc theo thời gian.
// service lọc theo heading_msg dù báo cáo CDMA luôn hiển thị "Know Your Dues".
func BuildCDMAQuery(filter paymentreportdto.ReportFilter) (bson.M, error) {
	query := bson.M{}

	if filter.ServiceName != "" {
		query[paymentreportmodels.CDMAFieldHeadingMsg] = filter.ServiceName
	}

	if filter.Status != "" {
		code, err := CDMAStatusCode(filter.Status)
		if err != nil {
			return nil, err
		}
		query[paymentreportmodels.CDMAFieldTransStatus] = code
	}

	rng, ok, err := timeRange(filter.StartTime, filter.EndTime)
	if err != nil {
		return nil, err
	}
	if ok {
		query[paymentreportmodels.CDMAFieldCreatedDate] = rng
	}

	return query, nil
}
