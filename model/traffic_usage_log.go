package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrafficUsageLog 一次 Google API 呼叫的用量紀錄，不含請求參數與回應內容
type TrafficUsageLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Service    string             `bson:"service"`
	API        string             `bson:"api"`
	Status     string             `bson:"status"`
	Elements   int                `bson:"elements,omitempty"`
	DurationMs float64            `bson:"duration_ms"`
	CreatedAt  time.Time          `bson:"created_at"`
}
