package paymentreportsvc

import (
	"testing"
	"time"

	paymentreportmodels "ap_payment_reports/internal/api/paymentreport/models"
	"ap_payment_reports/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReportTime(t *testing.T) {
	assert.Equal(t, "2024-01-01 05:30:00", FormatReportTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	// Qua ngày
	assert.Equal(t, "2024-03-01 02:15:09", FormatReportTime(time.Date(2024, 2, 29, 20, 45, 9, 0, time.UTC)))
}

func TestToReportTime(t *testing.T) {
	got := ToReportTime(paymentreportmodels.FlexTimeOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-01 05:30:00", *got)

	assert.Nil(t, ToReportTime(paymentreportmodels.FlexTime{}), "không có giá trị thì trả về nil")
}

func TestValidateTimeWindow(t *testing.T) {
	window := 48 * time.Hour

	assert.NoError(t, ValidateTimeWindow("2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z", window))

	for name, tc := range map[string][2]string{
		"end before start": {"2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z"},
		"equal":            {"2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"},
		"too wide":         {"2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z"},
		"missing start":    {"", "2024-01-01T00:00:00Z"},
		"garbage":          {"yesterday", "today"},
	} {
		err := ValidateTimeWindow(tc[0], tc[1], window)
		assert.ErrorIs(t, err, common.ErrInvalidTimeWindow, name)
	}
}
