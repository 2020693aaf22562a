package controller

import (
	"context"
	"net/http"

	"maps-gateway/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
)

type MonitoringController struct {
	logger            zerolog.Logger
	monitoringService *service.MonitoringService
}

func NewMonitoringController(logger zerolog.Logger, monitoringService *service.MonitoringService) *MonitoringController {
	return &MonitoringController{
		logger:            logger.With().Str("module", "monitoring_controller").Logger(),
		monitoringService: monitoringService,
	}
}

type HealthResponse struct {
	Body struct {
		Status  string `json:"status" example:"ok"`
		Message string `json:"message" example:"服務運行正常"`
	}
}

type ComponentHealthResponse struct {
	Body service.HealthStatus
}

func (c *MonitoringController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "健康檢查",
		Tags:        []string{"system"},
	}, func(ctx context.Context, input *struct{}) (*HealthResponse, error) {
		resp := &HealthResponse{}
		resp.Body.Status = "ok"
		resp.Body.Message = "Maps Gateway 服務運行正常"
		return resp, nil
	})

	// MongoDB 監控端點
	huma.Register(api, huma.Operation{
		OperationID: "mongodb-monitoring",
		Method:      http.MethodGet,
		Path:        "/api/monitoring/mongodb",
		Summary:     "MongoDB 健康狀態監控",
		Tags:        []string{"monitoring"},
	}, func(ctx context.Context, input *struct{}) (*ComponentHealthResponse, error) {
		status := c.monitoringService.CheckMongoDB(ctx)
		if status.Status == service.HealthStatusUnhealthy {
			c.logger.Warn().Str("message", status.Message).Msg("MongoDB 健康檢查失敗")
		}
		return &ComponentHealthResponse{Body: status}, nil
	})

	// Redis 監控端點
	huma.Register(api, huma.Operation{
		OperationID: "redis-monitoring",
		Method:      http.MethodGet,
		Path:        "/api/monitoring/redis",
		Summary:     "Redis 健康狀態監控",
		Tags:        []string{"monitoring"},
	}, func(ctx context.Context, input *struct{}) (*ComponentHealthResponse, error) {
		status := c.monitoringService.CheckRedis(ctx)
		if status.Status == service.HealthStatusUnhealthy {
			c.logger.Warn().Str("message", status.Message).Msg("Redis 健康檢查失敗")
		}
		return &ComponentHealthResponse{Body: status}, nil
	})
}
