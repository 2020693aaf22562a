package model

type AddressComponent struct {
	LongName  *string  `json:"long_name" validate:"required"`
	ShortName *string  `json:"short_name" validate:"required"`
	Types     []string `json:"types" validate:"required"`
}

type PlaceOpeningHoursPeriodDetail struct {
	Day       *int    `json:"day" validate:"required,min=0,max=6"`
	Time      *string `json:"time" validate:"required" example:"0900"`
	Date      *string `json:"date,omitempty"`
	Truncated *bool   `json:"truncated,omitempty"`
}

// PlaceOpeningHoursPeriod 24 小時營業的地點沒有 close
type PlaceOpeningHoursPeriod struct {
	Open  *PlaceOpeningHoursPeriodDetail `json:"open" validate:"required"`
	Close *PlaceOpeningHoursPeriodDetail `json:"close,omitempty"`
}

type PlaceSpecialDay struct {
	Date             *string `json:"date,omitempty"` // RFC3339 date
	ExceptionalHours *bool   `json:"exceptional_hours,omitempty"`
}

type PlaceOpeningHours struct {
	OpenNow     *bool                     `json:"open_now,omitempty"`
	Periods     []PlaceOpeningHoursPeriod `json:"periods,omitempty" validate:"omitempty,dive"`
	SpecialDays []PlaceSpecialDay         `json:"special_days,omitempty" validate:"omitempty,dive"`
	Type        *string                   `json:"type,omitempty"`
	WeekdayText []string                  `json:"weekday_text,omitempty"`
}

type PlaceEditorialSummary struct {
	Language *string `json:"language,omitempty"`
	Overview *string `json:"overview,omitempty"`
}

type Geometry struct {
	Location *LatLng `json:"location" validate:"required"`
	Viewport *Bounds `json:"viewport" validate:"required"`
}

type PlacePhoto struct {
	Height           *int     `json:"height" validate:"required"`
	HTMLAttributions []string `json:"html_attributions" validate:"required"`
	PhotoReference   *string  `json:"photo_reference" validate:"required"`
	Width            *int     `json:"width" validate:"required"`
}

type PlusCode struct {
	GlobalCode   *string `json:"global_code" validate:"required" example:"8Q7XMQJ8+8Q"`
	CompoundCode *string `json:"compound_code,omitempty"`
}

type PlaceReview struct {
	AuthorName              *string `json:"author_name" validate:"required"`
	Rating                  *int    `json:"rating" validate:"required"`
	RelativeTimeDescription *string `json:"relative_time_description" validate:"required"`
	Time                    *int64  `json:"time" validate:"required"`
	AuthorURL               *string `json:"author_url,omitempty"`
	Language                *string `json:"language,omitempty"`
	OriginalLanguage        *string `json:"original_language,omitempty"`
	ProfilePhotoURL         *string `json:"profile_photo_url,omitempty"`
	Text                    *string `json:"text,omitempty"`
	Translated              *bool   `json:"translated,omitempty"`
}

// Place 所有欄位皆為選填，Google 依查詢類型只回傳部分欄位
type Place struct {
	AddressComponents        []AddressComponent     `json:"address_components,omitempty" validate:"omitempty,dive"`
	AdrAddress               *string                `json:"adr_address,omitempty"`
	BusinessStatus           *string                `json:"business_status,omitempty"`
	CurbsidePickup           *bool                  `json:"curbside_pickup,omitempty"`
	CurrentOpeningHours      *PlaceOpeningHours     `json:"current_opening_hours,omitempty"`
	Delivery                 *bool                  `json:"delivery,omitempty"`
	DineIn                   *bool                  `json:"dine_in,omitempty"`
	EditorialSummary         *PlaceEditorialSummary `json:"editorial_summary,omitempty"`
	FormattedAddress         *string                `json:"formatted_address,omitempty"`
	FormattedPhoneNumber     *string                `json:"formatted_phone_number,omitempty"`
	Geometry                 *Geometry              `json:"geometry,omitempty"`
	Icon                     *string                `json:"icon,omitempty"`
	IconBackgroundColor      *string                `json:"icon_background_color,omitempty"`
	IconMaskBaseURI          *string                `json:"icon_mask_base_uri,omitempty"`
	InternationalPhoneNumber *string                `json:"international_phone_number,omitempty"`
	Name                     *string                `json:"name,omitempty"`
	OpeningHours             *PlaceOpeningHours     `json:"opening_hours,omitempty"`
	Photos                   []PlacePhoto           `json:"photos,omitempty" validate:"omitempty,dive"`
	PlaceID                  *string                `json:"place_id,omitempty"`
	PlusCode                 *PlusCode              `json:"plus_code,omitempty"`

	// 0: Free, 1: Inexpensive, 2: Moderate, 3: Expensive, 4: Very Expensive
	PriceLevel            *int                `json:"price_level,omitempty" validate:"omitempty,min=0,max=4"`
	Rating                *float64            `json:"rating,omitempty"`
	Reviews               []PlaceReview       `json:"reviews,omitempty" validate:"omitempty,dive"`
	SecondaryOpeningHours []PlaceOpeningHours `json:"secondary_opening_hours,omitempty" validate:"omitempty,dive"`
	Takeout               *bool               `json:"takeout,omitempty"`
	Types                 []string            `json:"types,omitempty"`
	URL                   *string             `json:"url,omitempty"`
	UserRatingsTotal      *int                `json:"user_ratings_total,omitempty"`
	UTCOffset             *int                `json:"utc_offset,omitempty"`
	Vicinity              *string             `json:"vicinity,omitempty"`
	Website               *string             `json:"website,omitempty"`
}

// PlacesResult Text Search 的結果集合
type PlacesResult struct {
	HTMLAttributions []string `json:"html_attributions"`
	Results          []Place  `json:"results" validate:"dive"`
}
