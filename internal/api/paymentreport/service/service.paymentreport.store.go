package paymentreportsvc

import (
	"context"

	"ap_payment_reports/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordStore nguồn đọc bản ghi gốc của một department. Chỉ đọc.
type RecordStore[T any] interface {
	Find(ctx context.Context, filter bson.M) ([]T, error)
}

// MongoRecordStore đọc bản ghi từ một collection MongoDB
type MongoRecordStore[T any] struct {
	coll *mongo.Collection
}

// NewMongoRecordStore tạo store trên collection cho trước
func NewMongoRecordStore[T any](coll *mongo.Collection) *MongoRecordStore[T] {
	return &MongoRecordStore[T]{coll: coll}
}

// Find trả về toàn bộ bản ghi khớp filter, không sắp xếp. Lỗi driver được bọc thành ErrStoreFailure.
func (s *MongoRecordStore[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
