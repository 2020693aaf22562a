package google_map

import "maps-gateway/model"

type DirectionsBody struct {
	Origin      string            `json:"origin" minLength:"1" example:"東京駅" doc:"出發地（地址、地名或 lat,lng）"`
	Destination string            `json:"destination" minLength:"1" example:"新宿駅" doc:"目的地（地址、地名或 lat,lng）"`
	TargetTime  string            `json:"target_time" minLength:"1" example:"2024-05-01T09:00:00+09:00" doc:"ISO-8601 時間；未帶偏移量時以預設時區解讀"`
	Mode        model.TravelMode  `json:"mode,omitempty" enum:"driving,walking,bicycling,transit" default:"transit" doc:"交通方式"`
	TransitMode model.TransitMode `json:"transit_mode,omitempty" enum:"bus,subway,train,tram,rail" default:"rail" doc:"大眾運輸偏好"`
	TimeMode    model.TimeMode    `json:"time_mode,omitempty" enum:"arrival,departure" default:"departure" doc:"target_time 代表抵達或出發時間"`
	Language    model.Language    `json:"language,omitempty" enum:"ja,en,es,fr,de,it,pt,ru,zh-CN,zh-TW" default:"ja" doc:"回傳語言"`
}

type DirectionsInput struct {
	Body DirectionsBody
}

// Request 轉成 model 層的請求，正規化交給 model
func (in *DirectionsInput) Request() model.DirectionsRequest {
	return model.DirectionsRequest{
		Origin:      in.Body.Origin,
		Destination: in.Body.Destination,
		TargetTime:  in.Body.TargetTime,
		Mode:        in.Body.Mode,
		TransitMode: in.Body.TransitMode,
		TimeMode:    in.Body.TimeMode,
		Language:    in.Body.Language,
	}
}

type DirectionsResponse struct {
	Body []model.DirectionsRoute
}

type PlacesBody struct {
	Query    string         `json:"query" minLength:"1" example:"東京タワー" doc:"搜尋關鍵字"`
	Language model.Language `json:"language,omitempty" enum:"ja,en,es,fr,de,it,pt,ru,zh-CN,zh-TW" default:"ja" doc:"回傳語言"`
}

type PlacesInput struct {
	Body PlacesBody
}

func (in *PlacesInput) Request() model.PlacesRequest {
	return model.PlacesRequest{
		Query:    in.Body.Query,
		Language: in.Body.Language,
	}
}

// PlacesResponse 沒有結果時 Body 為 nil
type PlacesResponse struct {
	Body *model.PlacesResult
}

type RootResponse struct {
	Body struct {
		Message string `json:"message" example:"Hello World"`
	}
}
