package service

import (
	"context"
	"fmt"
	"time"

	"maps-gateway/infra"
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
	HealthStatusDisabled  = "disabled"
)

// HealthStatus 單一基礎設施元件的檢查結果，Latency 單位為毫秒
type HealthStatus struct {
	Status  string  `json:"status" example:"healthy"`
	Latency float64 `json:"latency" example:"1.23"`
	Message string  `json:"message" example:"MongoDB 連接正常"`
}

func (h HealthStatus) Healthy() bool {
	return h.Status == HealthStatusHealthy
}

// MonitoringService 檢查選用的 MongoDB 與 Redis 連線
type MonitoringService struct {
	MongoDB *infra.MongoDB
	Redis   *infra.Redis
}

func NewMonitoringService(mongo *infra.MongoDB, redis *infra.Redis) *MonitoringService {
	return &MonitoringService{MongoDB: mongo, Redis: redis}
}

func (s *MonitoringService) CheckMongoDB(ctx context.Context) HealthStatus {
	if s.MongoDB == nil {
		return HealthStatus{Status: HealthStatusDisabled, Message: "MongoDB 服務未啟用"}
	}
	return checkHealth("MongoDB", func() error { return s.MongoDB.Client.Ping(ctx, nil) })
}

func (s *MonitoringService) CheckRedis(ctx context.Context) HealthStatus {
	if s.Redis == nil {
		return HealthStatus{Status: HealthStatusDisabled, Message: "Redis 服務未啟用"}
	}
	return checkHealth("Redis", func() error { return s.Redis.Client.Ping(ctx).Err() })
}

func checkHealth(name string, ping func() error) HealthStatus {
	start := time.Now()
	err := ping()
	latency := float64(time.Since(start).Nanoseconds()) / 1e6

	if err != nil {
		return HealthStatus{
			Status:  HealthStatusUnhealthy,
			Latency: latency,
			Message: fmt.Sprintf("%s 連接失敗: %v", name, err),
		}
	}
	return HealthStatus{
		Status:  HealthStatusHealthy,
		Latency: latency,
		Message: name + " 連接正常",
	}
}
