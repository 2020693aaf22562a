package traffic_usage_log

import "maps-gateway/service"

type GetTrafficUsageStatsInput struct {
	GroupBy string `query:"group_by" enum:"api,status" default:"api" doc:"Group by 'api' or 'status'"`
}

type TrafficUsageStatsResponse struct {
	Body []service.StatsResult `json:"stats"`
}

type GetDailyUsageInput struct {
	Day string `query:"day" pattern:"^[0-9]{8}$" example:"20240501" doc:"UTC 日期 yyyymmdd，預設今天"`
}

type DailyUsageResponse struct {
	Body []service.DailyUsage `json:"usage"`
}
