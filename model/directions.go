package model

// DirectionsPolyline 編碼後的 polyline 字串，不在本服務解碼
type DirectionsPolyline struct {
	Points *string `json:"points" validate:"required"`
}

type DirectionsTransitStop struct {
	Location *LatLng `json:"location" validate:"required"`
	Name     *string `json:"name" validate:"required" example:"東京"`
}

type DirectionsTransitAgency struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	URL   *string `json:"url,omitempty"`
}

type DirectionsTransitVehicle struct {
	Name      *string      `json:"name" validate:"required" example:"電車"`
	Type      *VehicleType `json:"type" validate:"required,oneof=BUS CABLE_CAR COMMUTER_TRAIN FERRY FUNICULAR GONDOLA_LIFT HEAVY_RAIL HIGH_SPEED_TRAIN INTERCITY_BUS LONG_DISTANCE_TRAIN METRO_RAIL MONORAIL OTHER RAIL SHARE_TAXI SUBWAY TRAM TROLLEYBUS"`
	Icon      *string      `json:"icon,omitempty"`
	LocalIcon *string      `json:"local_icon,omitempty"`
}

type DirectionsTransitLine struct {
	Agencies  []DirectionsTransitAgency `json:"agencies" validate:"required,dive"`
	Name      *string                   `json:"name" validate:"required" example:"JR山手線"`
	Color     *string                   `json:"color,omitempty"`
	Icon      *string                   `json:"icon,omitempty"`
	ShortName *string                   `json:"short_name,omitempty"`
	TextColor *string                   `json:"text_color,omitempty"`
	URL       *string                   `json:"url,omitempty"`
	Vehicle   *DirectionsTransitVehicle `json:"vehicle,omitempty"`
}

// DirectionsTransitDetails 僅在 travel_mode 為 TRANSIT 的 step 出現
type DirectionsTransitDetails struct {
	ArrivalStop   *DirectionsTransitStop `json:"arrival_stop" validate:"required"`
	ArrivalTime   *TimeZoneTextValue     `json:"arrival_time" validate:"required"`
	DepartureStop *DirectionsTransitStop `json:"departure_stop" validate:"required"`
	DepartureTime *TimeZoneTextValue     `json:"departure_time" validate:"required"`
	Headsign      *string                `json:"headsign" validate:"required"`
	// 班距（秒），Google 對許多路線不提供
	Headway       *int                   `json:"headway,omitempty"`
	Line          *DirectionsTransitLine `json:"line" validate:"required"`
	NumStops      *int                   `json:"num_stops" validate:"required"`
	TripShortName *string                `json:"trip_short_name,omitempty"`
}

type DirectionsStep struct {
	Distance         *TextValue                `json:"distance" validate:"required"`
	Duration         *TextValue                `json:"duration" validate:"required"`
	EndLocation      *LatLng                   `json:"end_location" validate:"required"`
	HTMLInstructions *string                   `json:"html_instructions" validate:"required"`
	Polyline         *DirectionsPolyline       `json:"polyline" validate:"required"`
	StartLocation    *LatLng                   `json:"start_location" validate:"required"`
	TravelMode       *StepTravelMode           `json:"travel_mode" validate:"required,oneof=DRIVING BICYCLING TRANSIT WALKING"`
	Maneuver         *string                   `json:"maneuver,omitempty"`
	Steps            []DirectionsSubStep       `json:"steps,omitempty" validate:"omitempty,dive"`
	TransitDetails   *DirectionsTransitDetails `json:"transit_details,omitempty"`
}

// DirectionsSubStep 步行等路段下的細部步驟；Google 常省略 html_instructions，所以全部欄位都是選填
type DirectionsSubStep struct {
	Distance         *TextValue                `json:"distance,omitempty"`
	Duration         *TextValue                `json:"duration,omitempty"`
	EndLocation      *LatLng                   `json:"end_location,omitempty"`
	HTMLInstructions *string                   `json:"html_instructions,omitempty"`
	Polyline         *DirectionsPolyline       `json:"polyline,omitempty"`
	StartLocation    *LatLng                   `json:"start_location,omitempty"`
	TravelMode       *StepTravelMode           `json:"travel_mode,omitempty" validate:"omitempty,oneof=DRIVING BICYCLING TRANSIT WALKING"`
	Maneuver         *string                   `json:"maneuver,omitempty"`
	TransitDetails   *DirectionsTransitDetails `json:"transit_details,omitempty"`
}

type DirectionsViaWaypoint struct {
	Location          *LatLng  `json:"location,omitempty"`
	StepIndex         *int     `json:"step_index,omitempty"`
	StepInterpolation *float64 `json:"step_interpolation,omitempty"`
}

type DirectionsLeg struct {
	EndAddress        *string                 `json:"end_address" validate:"required"`
	EndLocation       *LatLng                 `json:"end_location" validate:"required"`
	StartAddress      *string                 `json:"start_address" validate:"required"`
	StartLocation     *LatLng                 `json:"start_location" validate:"required"`
	Steps             []DirectionsStep        `json:"steps" validate:"required,dive"`
	ViaWaypoint       []DirectionsViaWaypoint `json:"via_waypoint" validate:"required,dive"`
	ArrivalTime       *TimeZoneTextValue      `json:"arrival_time,omitempty"`
	DepartureTime     *TimeZoneTextValue      `json:"departure_time,omitempty"`
	Distance          *TextValue              `json:"distance,omitempty"`
	Duration          *TextValue              `json:"duration,omitempty"`
	DurationInTraffic *TextValue              `json:"duration_in_traffic,omitempty"`
}

type Fare struct {
	Currency *string `json:"currency" validate:"required" example:"JPY"`
	Text     *string `json:"text" validate:"required" example:"¥210"`
	Value    *int    `json:"value" validate:"required" example:"210"`
}

// DirectionsRoute 單一路線
type DirectionsRoute struct {
	Bounds           *Bounds             `json:"bounds" validate:"required"`
	Copyrights       *string             `json:"copyrights" validate:"required"`
	Legs             []DirectionsLeg     `json:"legs" validate:"required,dive"`
	OverviewPolyline *DirectionsPolyline `json:"overview_polyline" validate:"required"`
	Summary          *string             `json:"summary" validate:"required"`
	Warnings         []string            `json:"warnings" validate:"required"`
	WaypointOrder    []int               `json:"waypoint_order" validate:"required"`
	Fare             *Fare               `json:"fare,omitempty"`
}
