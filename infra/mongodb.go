package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB 連線並 ping 一次，失敗時回傳錯誤讓呼叫端決定是否繼續
func NewMongoDB(config MongoConfig) (*MongoDB, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetAppName(ServiceName).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info().Str("database", config.Database).Msg("Connected to MongoDB!")

	return &MongoDB{
		Client:   client,
		Database: client.Database(config.Database),
	}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *MongoDB) GetCollection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// EnsureTTLIndex 在 field 上建立 TTL 索引，文件超過 ttl 後由 MongoDB 自動刪除
func (m *MongoDB) EnsureTTLIndex(ctx context.Context, collection, field string, ttl time.Duration) error {
	_, err := m.GetCollection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	if err != nil {
		return fmt.Errorf("failed to create ttl index on %s.%s: %w", collection, field, err)
	}
	return nil
}
