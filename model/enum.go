package model

// TravelMode 請求端的交通方式（小寫，對應 Google Directions API 的 mode 參數）
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// TransitMode 大眾運輸偏好
type TransitMode string

const (
	TransitModeBus    TransitMode = "bus"
	TransitModeSubway TransitMode = "subway"
	TransitModeTrain  TransitMode = "train" // 日本地區 Google 可能不接受 train
	TransitModeTram   TransitMode = "tram"
	TransitModeRail   TransitMode = "rail"
)

// TimeMode 決定 target_time 是抵達時間還是出發時間
type TimeMode string

const (
	TimeModeArrival   TimeMode = "arrival"
	TimeModeDeparture TimeMode = "departure"
)

// Language 支援的回應語言
type Language string

const (
	LanguageJA   Language = "ja"
	LanguageEN   Language = "en"
	LanguageES   Language = "es"
	LanguageFR   Language = "fr"
	LanguageDE   Language = "de"
	LanguageIT   Language = "it"
	LanguagePT   Language = "pt"
	LanguageRU   Language = "ru"
	LanguageZHCN Language = "zh-CN"
	LanguageZHTW Language = "zh-TW"
)

// StepTravelMode 回應中 step 的交通方式（Google 回傳大寫）
type StepTravelMode string

const (
	StepTravelModeDriving   StepTravelMode = "DRIVING"
	StepTravelModeBicycling StepTravelMode = "BICYCLING"
	StepTravelModeTransit   StepTravelMode = "TRANSIT"
	StepTravelModeWalking   StepTravelMode = "WALKING"
)

// VehicleType 大眾運輸車輛類型
type VehicleType string

const (
	VehicleTypeBus               VehicleType = "BUS"
	VehicleTypeCableCar          VehicleType = "CABLE_CAR"
	VehicleTypeCommuterTrain     VehicleType = "COMMUTER_TRAIN"
	VehicleTypeFerry             VehicleType = "FERRY"
	VehicleTypeFunicular         VehicleType = "FUNICULAR"
	VehicleTypeGondolaLift       VehicleType = "GONDOLA_LIFT"
	VehicleTypeHeavyRail         VehicleType = "HEAVY_RAIL"
	VehicleTypeHighSpeedTrain    VehicleType = "HIGH_SPEED_TRAIN"
	VehicleTypeIntercityBus      VehicleType = "INTERCITY_BUS"
	VehicleTypeLongDistanceTrain VehicleType = "LONG_DISTANCE_TRAIN"
	VehicleTypeMetroRail         VehicleType = "METRO_RAIL"
	VehicleTypeMonorail          VehicleType = "MONORAIL"
	VehicleTypeOther             VehicleType = "OTHER"
	VehicleTypeRail              VehicleType = "RAIL"
	VehicleTypeShareTaxi         VehicleType = "SHARE_TAXI"
	VehicleTypeSubway            VehicleType = "SUBWAY"
	VehicleTypeTram              VehicleType = "TRAM"
	VehicleTypeTrolleybus        VehicleType = "TROLLEYBUS"
)

// GetAllTravelModes 返回所有請求端交通方式
func GetAllTravelModes() []TravelMode {
	return []TravelMode{TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit}
}

// GetAllTransitModes 返回所有大眾運輸偏好
func GetAllTransitModes() []TransitMode {
	return []TransitMode{TransitModeBus, TransitModeSubway, TransitModeTrain, TransitModeTram, TransitModeRail}
}

// GetAllTimeModes 返回所有時間模式
func GetAllTimeModes() []TimeMode {
	return []TimeMode{TimeModeArrival, TimeModeDeparture}
}

// GetAllLanguages 返回所有支援語言
// see https://developers.google.com/maps/faq#languagesupport
func GetAllLanguages() []Language {
	return []Language{
		LanguageJA, LanguageEN, LanguageES, LanguageFR, LanguageDE,
		LanguageIT, LanguagePT, LanguageRU, LanguageZHCN, LanguageZHTW,
	}
}

// GetAllStepTravelModes 返回回應中 step 可能出現的交通方式
func GetAllStepTravelModes() []StepTravelMode {
	return []StepTravelMode{StepTravelModeDriving, StepTravelModeBicycling, StepTravelModeTransit, StepTravelModeWalking}
}

// GetAllVehicleTypes 返回所有車輛類型
// see https://developers.google.com/maps/documentation/directions/get-directions#VehicleType
func GetAllVehicleTypes() []VehicleType {
	return []VehicleType{
		VehicleTypeBus, VehicleTypeCableCar, VehicleTypeCommuterTrain, VehicleTypeFerry,
		VehicleTypeFunicular, VehicleTypeGondolaLift, VehicleTypeHeavyRail, VehicleTypeHighSpeedTrain,
		VehicleTypeIntercityBus, VehicleTypeLongDistanceTrain, VehicleTypeMetroRail, VehicleTypeMonorail,
		VehicleTypeOther, VehicleTypeRail, VehicleTypeShareTaxi, VehicleTypeSubway,
		VehicleTypeTram, VehicleTypeTrolleybus,
	}
}
