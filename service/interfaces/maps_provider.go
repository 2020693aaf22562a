package interfaces

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"maps-gateway/model"
)

// MapsProvider 地圖供應商轉接介面，每個請求只呼叫一次；空結果回傳 nil 而非錯誤
type MapsProvider interface {
	Directions(ctx context.Context, params DirectionsParams) ([]json.RawMessage, error)
	TextSearch(ctx context.Context, params TextSearchParams) (json.RawMessage, error)
}

// DirectionsParams DepartureTime 與 ArrivalTime 最多只會設定其中一個
type DirectionsParams struct {
	Origin        string
	Destination   string
	Mode          model.TravelMode
	TransitMode   model.TransitMode
	Language      model.Language
	DepartureTime *int64
	ArrivalTime   *int64
}

// Values 轉成 Google Directions API 的 query 參數
func (p DirectionsParams) Values() url.Values {
	v := url.Values{}
	v.Set("origin", p.Origin)
	v.Set("destination", p.Destination)
	v.Set("alternatives", "false")
	if p.Mode != "" {
		v.Set("mode", string(p.Mode))
	}
	if p.TransitMode != "" {
		v.Set("transit_mode", string(p.TransitMode))
	}
	if p.Language != "" {
		v.Set("language", string(p.Language))
	}
	if p.DepartureTime != nil {
		v.Set("departure_time", strconv.FormatInt(*p.DepartureTime, 10))
	}
	if p.ArrivalTime != nil {
		v.Set("arrival_time", strconv.FormatInt(*p.ArrivalTime, 10))
	}
	return v
}

type TextSearchParams struct {
	Query    string
	Language model.Language
}

// Values 轉成 Google Places Text Search API 的 query 參數
func (p TextSearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("query", p.Query)
	if p.Language != "" {
		v.Set("language", string(p.Language))
	}
	return v
}
