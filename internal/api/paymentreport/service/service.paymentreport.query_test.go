package paymentreportsvc

import (
	"testing"
	"time"

	paymentreportdto "ap_payment_reports/internal/api/paymentreport/dto"
	"ap_payment_reports/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func TestBuildRevenueQuery_DefaultLookback(t *testing.T) {
	query, err := BuildRevenueQuery(paymentreportdto.ReportFilter{}, fixedNow, DefaultRevenueLookback)
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"createdate": bson.M{"$gte": fixedNow.Add(-2 * time.Hour)},
	}, query)
}

func TestBuildRevenueQuery_DefaultLookbackAgainstWallClock(t *testing.T) {
	before := time.Now()
	query, err := BuildRevenueQuery(paymentreportdto.ReportFilter{}, time.Now(), 0)
	require.NoError(t, err)

	rng, ok := query["createdate"].(bson.M)
	require.True(t, ok)
	assert.NotContains(t, rng, "$lte")
	gte, ok := rng["$gte"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, before.Add(-2*time.Hour), gte, 5*time.Second)
	assert.Equal(t, time.UTC, gte.Location())
}

func TestBuildRevenueQuery_TimeBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		filter paymentreportdto.ReportFilter
		want   bson.M
	}{
		{
			name:   "both",
			filter: paymentreportdto.ReportFilter{StartTime: "2024-01-01T05:30:00+05:30", EndTime: "2024-01-01T12:00:00Z"},
			want:   bson.M{"$gte": start, "$lte": end},
		},
		{
			name:   "start only",
			filter: paymentreportdto.ReportFilter{StartTime: "2024-01-01T00:00:00Z"},
			want:   bson.M{"$gte": start},
		},
		{
			name:   "end only",
			filter: paymentreportdto.ReportFilter{EndTime: "2024-01-01T12:00:00.000Z"},
			want:   bson.M{"$lte": end},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := BuildRevenueQuery(tc.filter, fixedNow, DefaultRevenueLookback)
			require.NoError(t, err)
			assert.Equal(t, tc.want, query["createdate"])
		})
	}
}

func TestBuildRevenueQuery_ServiceAndStatus(t *testing.T) {
	query, err := BuildRevenueQuery(paymentreportdto.ReportFilter{
		ServiceName: "Electricity",
		Status:      "pending",
		StartTime:   "2024-01-01",
	}, fixedNow, DefaultRevenueLookback)
	require.NoError(t, err)

	assert.Equal(t, "Electricity", query["servicename"])
	assert.Equal(t, "0002", query["payment_status"])
}

func TestBuildRevenueQuery_InvalidStatus(t *testing.T) {
	_, err := BuildRevenueQuery(paymentreportdto.ReportFilter{Status: "urgent"}, fixedNow, DefaultRevenueLookback)
	assert.ErrorIs(t, err, common.ErrInvalidStatus)
}

func TestBuildRevenueQuery_InvalidTime(t *testing.T) {
	_, err := BuildRevenueQuery(paymentreportdto.ReportFilter{StartTime: "yesterday"}, fixedNow, DefaultRevenueLookback)
	assert.ErrorIs(t, err, common.ErrInvalidTime)
}

func TestBuildRevenueQuery_CustomLookback(t *testing.T) {
	query, err := BuildRevenueQuery(paymentreportdto.ReportFilter{}, fixedNow, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$gte": fixedNow.Add(-30 * time.Minute)}, query["createdate"])
}

func TestBuildCDMAQuery_NoTimeConstraint(t *testing.T) {
	query, err := BuildCDMAQuery(paymentreportdto.ReportFilter{})
	require.NoError(t, err)
	assert.Empty(t, query)
	assert.NotContains(t, query, "created_date")
}

func TestBuildCDMAQuery_Filters(t *testing.T) {
	query, err := BuildCDMAQuery(paymentreportdto.ReportFilter{
		ServiceName: "Know Your Dues",
		Status:      "failed",
		StartTime:   "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"heading_msg":  "Know Your Dues",
		"trans_status": "F",
		"created_date": bson.M{"$gte": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, query)
}

func TestBuildCDMAQuery_RejectsPending(t *testing.T) {
	_, err := BuildCDMAQuery(paymentreportdto.ReportFilter{Status: "pending"})
	assert.ErrorIs(t, err, common.ErrInvalidStatus)
}
