package utility

import (
	"fmt"
	"strings"
	"time"
)

// DisplayDateTimeFormat định dạng hiển thị thời gian trên báo cáo (yyyy-MM-dd HH:mm:ss)
const DisplayDateTimeFormat = "2006-01-02 15:04:05"

// isoLayouts các layout ISO-8601 được chấp nhận, thử lần lượt.
// Layout không có offset được hiểu là UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseISOTime parse chuỗi thời gian dạng ISO-8601 và trả về thời điểm ở UTC
// @params - chuỗi thời gian (vd: 2024-01-01T00:00:00Z, 2024-01-01T05:30:00+05:30, 2024-01-01)
// @returns - thời điểm UTC, lỗi nếu không parse được
func ParseISOTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 time %q", value)
}

// LoadLocation load timezone theo tên, nếu máy không có tzdata thì dùng fixed zone với offset cho trước
// @params - tên timezone (vd: Asia/Kolkata), offset dự phòng tính bằng giây
// @returns - *time.Location
func LoadLocation(name string, fallbackOffset int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, fallbackOffset)
	}
	return loc
}
