package model

// LatLng 經緯度
type LatLng struct {
	Lat *float64 `json:"lat" validate:"required" doc:"緯度"`
	Lng *float64 `json:"lng" validate:"required" doc:"經度"`
}

// Bounds 矩形範圍，northeast/southwest 由 Google 提供，不檢查大小順序
type Bounds struct {
	Northeast *LatLng `json:"northeast" validate:"required"`
	Southwest *LatLng `json:"southwest" validate:"required"`
}

// TextValue 顯示文字搭配數值（公尺或秒）
type TextValue struct {
	Text  *string `json:"text" validate:"required" example:"1.2 km"`
	Value *int    `json:"value" validate:"required" example:"1200"`
}

// TimeZoneTextValue 抵達/出發時間，value 為 epoch 秒
type TimeZoneTextValue struct {
	Text     *string `json:"text" validate:"required" example:"10:15"`
	TimeZone *string `json:"time_zone" validate:"required" example:"Asia/Tokyo"`
	Value    *int64  `json:"value" validate:"required" example:"1714525200"`
}
