package background

import (
	"context"
	"errors"
	"time"

	"maps-gateway/middleware"
	"maps-gateway/service"
	"maps-gateway/utils"

	"github.com/rs/zerolog"
)

const metricsUpdateInterval = 30 * time.Second

// MetricsUpdater 定期把基礎設施健康狀態與今日 Google 用量寫入 Prometheus gauges
type MetricsUpdater struct {
	logger             zerolog.Logger
	MonitoringSvc      *service.MonitoringService
	TrafficUsageLogSvc *service.TrafficUsageLogService
	interval           time.Duration
}

func NewMetricsUpdater(logger zerolog.Logger, monitoringSvc *service.MonitoringService, trafficUsageLogSvc *service.TrafficUsageLogService) *MetricsUpdater {
	return &MetricsUpdater{
		logger:             logger.With().Str("component", "metrics-updater").Logger(),
		MonitoringSvc:      monitoringSvc,
		TrafficUsageLogSvc: trafficUsageLogSvc,
		interval:           metricsUpdateInterval,
	}
}

// Start 阻塞直到 ctx 結束
func (u *MetricsUpdater) Start(ctx context.Context) {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.logger.Info().Dur("interval", u.interval).Msg("Metrics 更新器已啟動")
	u.Update(ctx)

	for {
		select {
		case <-ctx.Done():
			u.logger.Info().Msg("Metrics 更新器已停止")
			return
		case <-ticker.C:
			u.Update(ctx)
		}
	}
}

// Update 執行一次更新
func (u *MetricsUpdater) Update(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, u.interval/2)
	defer cancel()

	if mongo := u.MonitoringSvc.CheckMongoDB(checkCtx); mongo.Status != service.HealthStatusDisabled {
		middleware.UpdateInfrastructureHealth("database", "mongodb", mongo.Healthy(), mongo.Latency)
	}
	if redis := u.MonitoringSvc.CheckRedis(checkCtx); redis.Status != service.HealthStatusDisabled {
		middleware.UpdateInfrastructureHealth("cache", "redis", redis.Healthy(), redis.Latency)
	}

	usage, err := u.TrafficUsageLogSvc.GetDailyUsage(checkCtx, utils.NowUTC())
	if err != nil {
		if !errors.Is(err, service.ErrUsageStoreDisabled) {
			u.logger.Error().Err(err).Msg("獲取今日 Google 用量失敗")
		}
		return
	}
	counts := make(map[string]int64, len(usage))
	for _, item := range usage {
		counts[item.API] = item.Count
	}
	middleware.UpdateGoogleDailyUsage(counts)
}
