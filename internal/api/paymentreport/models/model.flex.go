package paymentreportmodels

import (
	"strconv"
	"time"

	"ap_payment_reports/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexString đọc một field có thể lưu dưới nhiều kiểu BSON (string, số, decimal, ObjectID)
// và giữ lại dạng chuỗi. Dữ liệu cũ của các department không đồng nhất kiểu nên không decode thẳng vào string.
type FlexString struct {
	Value string
	Valid bool // false khi field không có, null hoặc kiểu không đọc được
}

// FlexStringOf tạo FlexString hợp lệ từ chuỗi
func FlexStringOf(s string) FlexString {
	return FlexString{Value: s, Valid: true}
}

// String trả về chuỗi, rỗng nếu không hợp lệ
func (s FlexString) String() string {
	if !s.Valid {
		return ""
	}
	return s.Value
}

// UnmarshalBSONValue implement bson.ValueUnmarshaler. Không bao giờ trả lỗi:
// kiểu BSON không chuyển được sang chuỗi thì Valid = false.
func (s *FlexString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*s = FlexString{}
		return nil
	case bson.TypeString:
		s.Value = raw.StringValue()
	case bson.TypeSymbol:
		s.Value = raw.Symbol()
	case bson.TypeInt32:
		s.Value = strconv.FormatInt(int64(raw.Int32()), 10)
	case bson.TypeInt64:
		s.Value = strconv.FormatInt(raw.Int64(), 10)
	case bson.TypeDouble:
		s.Value = utility.FormatNumber(raw.Double())
	case bson.TypeDecimal128:
		s.Value = raw.Decimal128().String()
	case bson.TypeObjectID:
		s.Value = raw.ObjectID().Hex()
	case bson.TypeBoolean:
		s.Value = strconv.FormatBool(raw.Boolean())
	default:
		// document, array, binary, ... không có dạng chuỗi hợp lý: coi như không có giá trị
		*s = FlexString{}
		return nil
	}
	s.Valid = true
	return nil
}

// FlexTime đọc timestamp lưu dạng BSON datetime, chuỗi ISO-8601 hoặc số mili giây
type FlexTime struct {
	Time  time.Time // luôn ở UTC
	Valid bool      // false khi field không có, null, chuỗi không parse được hoặc kiểu lạ
}

// FlexTimeOf tạo FlexTime hợp lệ
func FlexTimeOf(t time.Time) FlexTime {
	return FlexTime{Time: t.UTC(), Valid: true}
}

// UnmarshalBSONValue implement bson.ValueUnmarshaler
func (ft *FlexTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*ft = FlexTime{}
		return nil
	case bson.TypeDateTime:
		ft.Time = raw.Time().UTC()
	case bson.TypeString:
		// Chuỗi rỗng hoặc sai định dạng coi như không có giá trị, không làm hỏng cả lần đọc
		parsed, err := utility.ParseISOTime(raw.StringValue())
		if err != nil {
			*ft = FlexTime{}
			return nil
		}
		ft.Time = parsed
	case bson.TypeInt64:
		ft.Time = time.UnixMilli(raw.Int64()).UTC()
	case bson.TypeInt32:
		ft.Time = time.UnixMilli(int64(raw.Int32())).UTC()
	case bson.TypeDouble:
		ft.Time = time.UnixMilli(int64(raw.Double())).UTC()
	case bson.TypeTimestamp:
		sec, _ := raw.Timestamp()
		ft.Time = time.Unix(int64(sec), 0).UTC()
	default:
		*ft = FlexTime{}
		return nil
	}
	ft.Valid = true
	return nil
}
