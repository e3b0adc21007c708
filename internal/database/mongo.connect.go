package database

import (
	"context"
	"fmt"
	"time"

	"ap_payment_reports/config"
	"ap_payment_reports/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// GetInstance khởi tạo và trả về *mongo.Client từ connection URI trong cấu hình.
// Client được chia sẻ giữa các request, driver tự quản lý pool.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	maxPool := uint64(50)
	if c.MongoDB_MaxPoolSize > 0 {
		maxPool = uint64(c.MongoDB_MaxPoolSize)
	}

	// Service chỉ đọc báo cáo nên ưu tiên đọc từ secondary nếu có
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(maxPool).
		SetMinPoolSize(5).
		SetConnectTimeout(5 * time.Second).
		SetReadPreference(readpref.SecondaryPreferred()).
		SetAppName("ap-payment-reports")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := Ping(context.Background(), client); err != nil {
		return nil, err
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// Ping kiểm tra kết nối tới MongoDB, timeout 2 giây
func Ping(ctx context.Context, client *mongo.Client) error {
	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctxPing, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

// CloseInstance đóng kết nối MongoDB client
func CloseInstance(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
