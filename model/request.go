package model

import (
	"strings"
	"time"

	"maps-gateway/utils"
)

// DirectionsRequest 路線查詢請求；oneof 清單需與 enum.go 的 GetAll… 一致
type DirectionsRequest struct {
	Origin      string      `json:"origin" validate:"required"`
	Destination string      `json:"destination" validate:"required"`
	TargetTime  string      `json:"target_time" validate:"required"`
	Mode        TravelMode  `json:"mode" validate:"oneof=driving walking bicycling transit"`
	TransitMode TransitMode `json:"transit_mode" validate:"oneof=bus subway train tram rail"`
	TimeMode    TimeMode    `json:"time_mode" validate:"oneof=arrival departure"`
	Language    Language    `json:"language" validate:"oneof=ja en es fr de it pt ru zh-CN zh-TW"`
}

// Normalize 驗證並補上預設值；對已正規化的請求再次呼叫會得到相同結果
func (r DirectionsRequest) Normalize(loc *time.Location) (DirectionsRequest, error) {
	out := r
	out.Origin = strings.TrimSpace(r.Origin)
	out.Destination = strings.TrimSpace(r.Destination)
	out.TargetTime = strings.TrimSpace(r.TargetTime)

	if out.Mode == "" {
		out.Mode = TravelModeTransit
	}
	if out.TransitMode == "" {
		out.TransitMode = TransitModeRail
	}
	if out.TimeMode == "" {
		out.TimeMode = TimeModeDeparture
	}
	if out.Language == "" {
		out.Language = LanguageJA
	}

	if err := validateRequest(out); err != nil {
		return DirectionsRequest{}, err
	}

	t, err := utils.ParseTargetTime(out.TargetTime, loc)
	if err != nil {
		return DirectionsRequest{}, &ValidationError{Field: "target_time", Message: err.Error(), Value: r.TargetTime}
	}
	out.TargetTime = utils.FormatTargetTime(t)
	return out, nil
}

// Time 回傳正規化後的 target_time
func (r DirectionsRequest) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, r.TargetTime)
}

// PlacesRequest 地點文字搜尋請求
type PlacesRequest struct {
	Query    string   `json:"query" validate:"required"`
	Language Language `json:"language" validate:"oneof=ja en es fr de it pt ru zh-CN zh-TW"`
}

func (r PlacesRequest) Normalize() (PlacesRequest, error) {
	out := r
	out.Query = strings.TrimSpace(r.Query)
	if out.Language == "" {
		out.Language = LanguageJA
	}
	if err := validateRequest(out); err != nil {
		return PlacesRequest{}, err
	}
	return out, nil
}
