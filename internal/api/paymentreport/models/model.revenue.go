// Package paymentreportmodels chứa các model BSON của giao dịch thanh toán theo từng department.
package paymentreportmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tên field trong collection giao dịch Revenue, dùng khi build filter
const (
	RevenueFieldServiceName   = "servicename"
	RevenueFieldPaymentStatus = "payment_status"
	RevenueFieldCreateDate    = "createdate"
)

// Mã trạng thái gốc của Revenue
const (
	RevenueStatusCodeSuccess = "0300"
	RevenueStatusCodeFailed  = "0399"
	RevenueStatusCodePending = "0002"
)

// RevenuePaymentReport bản ghi giao dịch gốc của department Revenue
type RevenuePaymentReport struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ServiceName          FlexString         `bson:"servicename"`
	Amount               FlexString         `bson:"amount"`
	MobileNo             FlexString         `bson:"mobileno"`
	PaymentStatus        FlexString         `bson:"payment_status"` // 0300 | 0399 | 0002
	OrderID              FlexString         `bson:"orderid"`
	ReferenceID          FlexString         `bson:"reference_id"`
	TransactionID        FlexString         `bson:"transactionid"`
	TransactionIDPayment FlexString         `bson:"transactionid_payment"` // mã giao dịch phía department
	CreateDate           FlexTime           `bson:"createdate"`
	UpdatedDate          FlexTime           `bson:"updated_date"`
}
