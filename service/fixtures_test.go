package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"maps-gateway/service/interfaces"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const walkingRouteJSON = `{
	"bounds": {
		"northeast": {"lat": 35.6896, "lng": 139.7671},
		"southwest": {"lat": 35.6812, "lng": 139.7004}
	},
	"copyrights": "Map data ©2024",
	"legs": [{
		"end_address": "新宿駅",
		"end_location": {"lat": 35.6896, "lng": 139.7004},
		"start_address": "東京駅",
		"start_location": {"lat": 35.6812, "lng": 139.7671},
		"steps": [{
			"distance": {"text": "1.2 km", "value": 1200},
			"duration": {"text": "15 mins", "value": 900},
			"end_location": {"lat": 35.6896, "lng": 139.7004},
			"html_instructions": "Walk to 新宿駅",
			"polyline": {"points": "a~l~Fjk~uOwHJy@P"},
			"start_location": {"lat": 35.6812, "lng": 139.7671},
			"travel_mode": "WALKING"
		}],
		"via_waypoint": []
	}],
	"overview_polyline": {"points": "a~l~Fjk~uOwHJy@P"},
	"summary": "",
	"warnings": [],
	"waypoint_order": []
}`

const transitStepJSON = `{
	"distance": {"text": "10.3 km", "value": 10300},
	"duration": {"text": "14 mins", "value": 840},
	"end_location": {"lat": 35.6896, "lng": 139.7004},
	"html_instructions": "Train towards 新宿",
	"polyline": {"points": "abc"},
	"start_location": {"lat": 35.6812, "lng": 139.7671},
	"travel_mode": "TRANSIT",
	"transit_details": {
		"arrival_stop": {"location": {"lat": 35.6896, "lng": 139.7004}, "name": "新宿"},
		"arrival_time": {"text": "9:14", "time_zone": "Asia/Tokyo", "value": 1714522440},
		"departure_stop": {"location": {"lat": 35.6812, "lng": 139.7671}, "name": "東京"},
		"departure_time": {"text": "9:00", "time_zone": "Asia/Tokyo", "value": 1714521600},
		"headsign": "新宿",
		"line": {
			"agencies": [{"name": "JR東日本", "url": "https://www.jreast.co.jp/"}],
			"name": "中央線快速",
			"vehicle": {"name": "電車", "type": "HEAVY_RAIL", "icon": "//maps.gstatic.com/rail.png"}
		},
		"num_stops": 4
	}
}`

const placesJSON = `{
	"html_attributions": [],
	"results": [{
		"formatted_address": "東京都港区芝公園４丁目２−８",
		"geometry": {
			"location": {"lat": 35.6585805, "lng": 139.7454329},
			"viewport": {
				"northeast": {"lat": 35.66, "lng": 139.75},
				"southwest": {"lat": 35.65, "lng": 139.74}
			}
		},
		"name": "東京タワー",
		"opening_hours": {
			"open_now": true,
			"periods": [{"open": {"day": 0, "time": "0000"}}]
		},
		"place_id": "ChIJCewJkL2LGGAR3Qmk0vCTGkg",
		"price_level": 2,
		"rating": 4.5,
		"types": ["tourist_attraction", "point_of_interest"]
	}],
	"status": "OK"
}`

func testLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t))
}

// mutateJSON 解開 JSON 後交給 fn 修改再重新編碼
func mutateJSON(t *testing.T, raw string, fn func(doc map[string]any)) json.RawMessage {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	fn(doc)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func firstLeg(doc map[string]any) map[string]any {
	return doc["legs"].([]any)[0].(map[string]any)
}

func firstStep(doc map[string]any) map[string]any {
	return firstLeg(doc)["steps"].([]any)[0].(map[string]any)
}

// stubProvider 記錄呼叫次數並回傳預設結果
type stubProvider struct {
	mu             sync.Mutex
	directionsArgs []interfaces.DirectionsParams
	searchArgs     []interfaces.TextSearchParams

	routes []json.RawMessage
	places json.RawMessage
	err    error
}

func (p *stubProvider) Directions(_ context.Context, params interfaces.DirectionsParams) ([]json.RawMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.directionsArgs = append(p.directionsArgs, params)
	return p.routes, p.err
}

func (p *stubProvider) TextSearch(_ context.Context, params interfaces.TextSearchParams) (json.RawMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchArgs = append(p.searchArgs, params)
	return p.places, p.err
}

func (p *stubProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.directionsArgs) + len(p.searchArgs)
}
