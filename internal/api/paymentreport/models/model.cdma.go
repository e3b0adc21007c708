package paymentreportmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tên field trong collection giao dịch CDMA, dùng khi build filter
const (
	CDMAFieldHeadingMsg  = "heading_msg"
	CDMAFieldTransStatus = "trans_status"
	CDMAFieldCreatedDate = "created_date"
)

// Mã trạng thái gốc của CDMA (không có pending)
const (
	CDMAStatusCodeSuccess = "S"
	CDMAStatusCodeFailed  = "F"
)

// CDMATrCreateResponse phản hồi khi tạo giao dịch, lưu lồng trong bản ghi CDMA
type CDMATrCreateResponse struct {
	CFMSTRID FlexString `bson:"CFMS_TRID"`
}

// CDMAPaymentReport bản ghi giao dịch gốc của department CDMA
type CDMAPaymentReport struct {
	ID                primitive.ObjectID    `bson:"_id,omitempty"`
	ServiceCode       FlexString            `bson:"service_code"` // wt | pt | vlt | stax | tl
	HeadingMsg        FlexString            `bson:"heading_msg"`
	TransStatus       FlexString            `bson:"trans_status"` // S | F
	Amount            FlexString            `bson:"amount"`
	ConsumerID        FlexString            `bson:"consumerid"`
	TrCreateResponse  *CDMATrCreateResponse `bson:"tr_create_response"`
	DeptTransactionID FlexString            `bson:"dept_transaction_id"`
	MobileNo          FlexString            `bson:"mobileno"`
	CreatedDate       FlexTime              `bson:"created_date"`
	UpdatedDate       FlexTime              `bson:"updated_date"`
}
