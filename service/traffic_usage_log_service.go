package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maps-gateway/infra"
	"maps-gateway/metrics"
	"maps-gateway/model"
	"maps-gateway/utils"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	trafficUsageCollection = "traffic_usage_log"
	dailyUsageTTL          = 48 * time.Hour
	usageRecordTimeout     = 2 * time.Second
)

// ErrUsageStoreDisabled 對應的儲存後端沒有設定
var ErrUsageStoreDisabled = errors.New("usage store is not configured")

// TrackedAPIs 會計入每日用量的 Google API
var TrackedAPIs = []metrics.OperationType{metrics.OperationDirections, metrics.OperationTextSearch}

type TrafficUsageLogService struct {
	logger  zerolog.Logger
	MongoDB *infra.MongoDB
	Redis   *infra.Redis
}

// NewTrafficUsageLogService mongo 與 redis 皆可為 nil
func NewTrafficUsageLogService(logger zerolog.Logger, mongo *infra.MongoDB, redis *infra.Redis) *TrafficUsageLogService {
	return &TrafficUsageLogService{
		logger:  logger.With().Str("module", "traffic_usage_log_service").Logger(),
		MongoDB: mongo,
		Redis:   redis,
	}
}

// EnsureIndexes 讓使用日誌在保留期間後自動過期
func (s *TrafficUsageLogService) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	if s.MongoDB == nil {
		return ErrUsageStoreDisabled
	}
	if err := s.MongoDB.EnsureTTLIndex(ctx, trafficUsageCollection, "created_at", retention); err != nil {
		return err
	}
	s.logger.Info().Dur("retention", retention).Msg("流量使用日誌 TTL 索引已建立")
	return nil
}

// UsageKey Redis 每日計數 key
func UsageKey(api string, day time.Time) string {
	return fmt.Sprintf("google:usage:%s:%s", api, utils.DayKey(day))
}

// Record 記錄一次 Google 呼叫；失敗只寫日誌，不影響請求
func (s *TrafficUsageLogService) Record(ctx context.Context, api string, status metrics.OperationStatus, elements int, duration time.Duration) {
	if s == nil || (s.MongoDB == nil && s.Redis == nil) {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), usageRecordTimeout)
	defer cancel()
	now := utils.NowUTC()

	if s.MongoDB != nil {
		entry := model.TrafficUsageLog{
			Service:    string(metrics.ServiceTypeGoogle),
			API:        api,
			Status:     string(status),
			Elements:   elements,
			DurationMs: float64(duration.Microseconds()) / 1000,
			CreatedAt:  now,
		}
		if _, err := s.MongoDB.GetCollection(trafficUsageCollection).InsertOne(ctx, entry); err != nil {
			s.logger.Error().Err(err).Str("api", api).Msg("建立流量使用日誌失敗 (Failed to create traffic usage log)")
		}
	}

	if s.Redis != nil {
		key := UsageKey(api, now)
		if _, err := s.Redis.IncrWithTTL(ctx, key, dailyUsageTTL); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("更新每日用量計數失敗 (Failed to update daily usage counter)")
		}
	}
}

// StatsResult represents the result of a stats query
type StatsResult struct {
	ID    string `bson:"_id" json:"id"`
	Count int    `bson:"count" json:"count"`
}

// GetTrafficUsageStats returns aggregated statistics for traffic usage logs
func (s *TrafficUsageLogService) GetTrafficUsageStats(ctx context.Context, groupBy string) ([]StatsResult, error) {
	if groupBy != "api" && groupBy != "status" {
		s.logger.Warn().Str("group_by", groupBy).Msg("無效的群組欄位 (Invalid group_by field)")
		return nil, errors.New("無效的群組欄位，必須為 'api' 或 'status' (Invalid group_by field, must be 'api' or 'status')")
	}
	if s.MongoDB == nil {
		return nil, ErrUsageStoreDisabled
	}

	coll := s.MongoDB.GetCollection(trafficUsageCollection)

	pipeline := mongo.Pipeline{
		{primitive.E{Key: "$group", Value: bson.D{
			primitive.E{Key: "_id", Value: "$" + groupBy},
			primitive.E{Key: "count", Value: bson.D{primitive.E{Key: "$sum", Value: 1}}},
		}}},
		{primitive.E{Key: "$sort", Value: bson.D{primitive.E{Key: "count", Value: -1}}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		s.logger.Error().Str("group_by", groupBy).Err(err).Msg("聚合查詢流量統計失敗 (Failed to aggregate traffic usage stats)")
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []StatsResult
	if err = cursor.All(ctx, &results); err != nil {
		s.logger.Error().Str("group_by", groupBy).Err(err).Msg("讀取流量統計結果失敗 (Failed to read traffic usage stats results)")
		return nil, err
	}

	return results, nil
}

// DailyUsage 單一 API 在某天的呼叫次數
type DailyUsage struct {
	API   string `json:"api" example:"directions"`
	Day   string `json:"day" example:"20240501"`
	Count int64  `json:"count" example:"42"`
}

// GetDailyUsage 從 Redis 讀取指定日期的呼叫次數
func (s *TrafficUsageLogService) GetDailyUsage(ctx context.Context, day time.Time) ([]DailyUsage, error) {
	if s.Redis == nil {
		return nil, ErrUsageStoreDisabled
	}

	keys := make([]string, len(TrackedAPIs))
	for i, api := range TrackedAPIs {
		keys[i] = UsageKey(string(api), day)
	}
	counts, err := s.Redis.GetCounters(ctx, keys...)
	if err != nil {
		s.logger.Error().Err(err).Msg("讀取每日用量失敗 (Failed to read daily usage)")
		return nil, err
	}

	usage := make([]DailyUsage, len(TrackedAPIs))
	for i, api := range TrackedAPIs {
		usage[i] = DailyUsage{API: string(api), Day: utils.DayKey(day), Count: counts[i]}
	}
	return usage, nil
}
