package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"maps-gateway/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSchemaError(t *testing.T, err error) *model.SchemaError {
	t.Helper()
	require.Error(t, err)
	var schemaErr *model.SchemaError
	require.True(t, errors.As(err, &schemaErr), "expected *model.SchemaError, got %T", err)
	return schemaErr
}

func TestDecodeRoutesMinimalWalkingRoute(t *testing.T) {
	routes, err := DecodeRoutes([]json.RawMessage{json.RawMessage(walkingRouteJSON)})
	require.NoError(t, err)
	require.Len(t, routes, 1)

	route := routes[0]
	require.Len(t, route.Legs, 1)
	require.Len(t, route.Legs[0].Steps, 1)

	step := route.Legs[0].Steps[0]
	assert.Equal(t, 1200, *step.Distance.Value)
	assert.Equal(t, 900, *step.Duration.Value)
	assert.Equal(t, model.StepTravelModeWalking, *step.TravelMode)
	assert.Equal(t, "", *route.Summary)
	assert.Empty(t, route.Warnings)
	assert.NotNil(t, route.Warnings)

	// 選填欄位維持 nil，不補預設值
	assert.Nil(t, route.Fare)
	assert.Nil(t, route.Legs[0].ArrivalTime)
	assert.Nil(t, route.Legs[0].Distance)
	assert.Nil(t, step.TransitDetails)
	assert.Nil(t, step.Maneuver)
	assert.Nil(t, step.Steps)
}

func TestDecodeRoutesTransitStep(t *testing.T) {
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		var transit map[string]any
		require.NoError(t, json.Unmarshal([]byte(transitStepJSON), &transit))
		firstLeg(doc)["steps"] = []any{transit}
	})

	routes, err := DecodeRoutes([]json.RawMessage{raw})
	require.NoError(t, err)

	details := routes[0].Legs[0].Steps[0].TransitDetails
	require.NotNil(t, details)
	assert.Nil(t, details.Headway)
	assert.Nil(t, details.TripShortName)
	assert.Equal(t, 4, *details.NumStops)
	assert.Equal(t, "中央線快速", *details.Line.Name)
	assert.Equal(t, model.VehicleTypeHeavyRail, *details.Line.Vehicle.Type)
	assert.Nil(t, details.Line.Vehicle.LocalIcon)
	assert.Equal(t, int64(1714521600), *details.DepartureTime.Value)
}

func TestDecodeRoutesNestedSteps(t *testing.T) {
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		step := firstStep(doc)
		var inner map[string]any
		require.NoError(t, json.Unmarshal(mustMarshal(t, step), &inner))
		delete(inner, "html_instructions")
		step["steps"] = []any{inner}
	})

	routes, err := DecodeRoutes([]json.RawMessage{raw})
	require.NoError(t, err)

	subSteps := routes[0].Legs[0].Steps[0].Steps
	require.Len(t, subSteps, 1)
	assert.Nil(t, subSteps[0].HTMLInstructions)
	assert.NotNil(t, subSteps[0].Distance)
}

func TestDecodeRoutesSubStepTravelMode(t *testing.T) {
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		step := firstStep(doc)
		step["steps"] = []any{
			map[string]any{"travel_mode": "WALKING"},
			map[string]any{"travel_mode": "TELEPORT"},
		}
	})

	_, err := DecodeRoutes([]json.RawMessage{raw})
	schemaErr := requireSchemaError(t, err)
	assert.Equal(t, "routes[0].legs[0].steps[0].steps[1].travel_mode", schemaErr.Path)
}

func TestDecodeRoutesSchemaErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(doc map[string]any)
		path   string
	}{
		{
			name:   "缺少 steps",
			mutate: func(doc map[string]any) { delete(firstLeg(doc), "steps") },
			path:   "routes[0].legs[0].steps",
		},
		{
			name:   "缺少 bounds",
			mutate: func(doc map[string]any) { delete(doc, "bounds") },
			path:   "routes[0].bounds",
		},
		{
			name: "缺少 northeast 緯度",
			mutate: func(doc map[string]any) {
				delete(doc["bounds"].(map[string]any)["northeast"].(map[string]any), "lat")
			},
			path: "routes[0].bounds.northeast.lat",
		},
		{
			name:   "缺少 warnings",
			mutate: func(doc map[string]any) { delete(doc, "warnings") },
			path:   "routes[0].warnings",
		},
		{
			name:   "step 交通方式不在列舉內",
			mutate: func(doc map[string]any) { firstStep(doc)["travel_mode"] = "FLYING" },
			path:   "routes[0].legs[0].steps[0].travel_mode",
		},
		{
			name: "step 距離缺少 value",
			mutate: func(doc map[string]any) {
				delete(firstStep(doc)["distance"].(map[string]any), "value")
			},
			path: "routes[0].legs[0].steps[0].distance.value",
		},
		{
			name:   "fare 不完整",
			mutate: func(doc map[string]any) { doc["fare"] = map[string]any{"currency": "JPY", "text": "¥210"} },
			path:   "routes[0].fare.value",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mutateJSON(t, walkingRouteJSON, tc.mutate)

			_, err := DecodeRoutes([]json.RawMessage{raw})
			schemaErr := requireSchemaError(t, err)
			assert.Equal(t, tc.path, schemaErr.Path)
			assert.JSONEq(t, string(raw), string(schemaErr.Payload))
		})
	}
}

func TestDecodeRoutesReportsFailingRouteIndex(t *testing.T) {
	broken := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) { delete(doc, "summary") })

	_, err := DecodeRoutes([]json.RawMessage{json.RawMessage(walkingRouteJSON), broken})
	schemaErr := requireSchemaError(t, err)
	assert.Equal(t, "routes[1].summary", schemaErr.Path)
}

func TestDecodeRoutesInvalidVehicleType(t *testing.T) {
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		var transit map[string]any
		require.NoError(t, json.Unmarshal([]byte(transitStepJSON), &transit))
		transit["transit_details"].(map[string]any)["line"].(map[string]any)["vehicle"].(map[string]any)["type"] = "ROCKET"
		firstLeg(doc)["steps"] = []any{transit}
	})

	_, err := DecodeRoutes([]json.RawMessage{raw})
	schemaErr := requireSchemaError(t, err)
	assert.Equal(t, "routes[0].legs[0].steps[0].transit_details.line.vehicle.type", schemaErr.Path)
}

func TestDecodeRoutesTypeMismatch(t *testing.T) {
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		firstStep(doc)["duration"] = map[string]any{"text": "15 mins", "value": "900"}
	})

	_, err := DecodeRoutes([]json.RawMessage{raw})
	schemaErr := requireSchemaError(t, err)
	assert.Equal(t, "routes[0].legs[0].steps[0].duration.value", schemaErr.Path)
}

func TestDecodeRoutesTypeMismatchInLaterStep(t *testing.T) {
	var brokenIndex int
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		leg := firstLeg(doc)
		var broken map[string]any
		require.NoError(t, json.Unmarshal(mustMarshal(t, firstStep(doc)), &broken))
		broken["distance"] = map[string]any{"text": "1.2 km", "value": true}
		steps := leg["steps"].([]any)
		brokenIndex = len(steps)
		leg["steps"] = append(steps, broken)
	})

	_, err := DecodeRoutes([]json.RawMessage{json.RawMessage(walkingRouteJSON), raw})
	schemaErr := requireSchemaError(t, err)
	assert.Equal(t, fmt.Sprintf("routes[1].legs[0].steps[%d].distance.value", brokenIndex), schemaErr.Path)
}

func TestIndexedPath(t *testing.T) {
	raw := []byte(`{"a":[{"b":1},{"b":2,"c":[0,{"d":"x"}]}],"e":{"f":[true]}}`)

	testCases := []struct {
		field  string
		token  string
		expect string
	}{
		{"a.b", `"b":2`, "a[1].b"},
		{"a.c.d", `"x"`, "a[1].c[1].d"},
		{"e.f", `true`, "e.f[0]"},
		{"a.b", `"b":1`, "a[0].b"},
	}

	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			offset := int64(bytes.Index(raw, []byte(tc.token)) + len(tc.token))
			assert.Equal(t, tc.expect, indexedPath(raw, tc.field, offset))
		})
	}

	assert.Equal(t, "missing.path", indexedPath(raw, "missing.path", int64(len(raw))))
}

func TestDecodeRoutesAcceptsZeroCoordinates(t *testing.T) {
	raw := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) {
		firstLeg(doc)["start_location"] = map[string]any{"lat": 0, "lng": 0}
	})

	routes, err := DecodeRoutes([]json.RawMessage{raw})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *routes[0].Legs[0].StartLocation.Lat)
}

func TestDecodeRoutesEmpty(t *testing.T) {
	routes, err := DecodeRoutes(nil)
	require.NoError(t, err)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

func TestDecodePlacesResult(t *testing.T) {
	result, err := DecodePlacesResult(json.RawMessage(placesJSON))
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	place := result.Results[0]
	assert.Equal(t, "東京タワー", *place.Name)
	assert.Equal(t, 2, *place.PriceLevel)
	assert.Equal(t, 35.6585805, *place.Geometry.Location.Lat)
	require.Len(t, place.OpeningHours.Periods, 1)
	assert.Equal(t, 0, *place.OpeningHours.Periods[0].Open.Day)
	assert.Nil(t, place.OpeningHours.Periods[0].Close)

	assert.Nil(t, place.Website)
	assert.Nil(t, place.Reviews)
	assert.Nil(t, place.PlusCode)
	assert.NotNil(t, result.HTMLAttributions)
}

func TestDecodePlacesResultMissingCollections(t *testing.T) {
	result, err := DecodePlacesResult(json.RawMessage(`{"status":"OK"}`))
	require.NoError(t, err)
	assert.NotNil(t, result.Results)
	assert.NotNil(t, result.HTMLAttributions)
	assert.Empty(t, result.Results)
}

func TestDecodePlacesResultSchemaErrors(t *testing.T) {
	firstPlace := func(doc map[string]any) map[string]any {
		return doc["results"].([]any)[0].(map[string]any)
	}

	testCases := []struct {
		name   string
		mutate func(doc map[string]any)
		path   string
	}{
		{
			name:   "價格等級超出範圍",
			mutate: func(doc map[string]any) { firstPlace(doc)["price_level"] = 5 },
			path:   "results[0].price_level",
		},
		{
			name: "營業時間缺少 day",
			mutate: func(doc map[string]any) {
				periods := firstPlace(doc)["opening_hours"].(map[string]any)["periods"].([]any)
				delete(periods[0].(map[string]any)["open"].(map[string]any), "day")
			},
			path: "results[0].opening_hours.periods[0].open.day",
		},
		{
			name:   "geometry 缺少 viewport",
			mutate: func(doc map[string]any) { delete(firstPlace(doc)["geometry"].(map[string]any), "viewport") },
			path:   "results[0].geometry.viewport",
		},
		{
			name: "評論缺少作者",
			mutate: func(doc map[string]any) {
				firstPlace(doc)["reviews"] = []any{map[string]any{
					"rating": 5, "relative_time_description": "a week ago", "time": 1714521600,
				}}
			},
			path: "results[0].reviews[0].author_name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mutateJSON(t, placesJSON, tc.mutate)

			_, err := DecodePlacesResult(raw)
			schemaErr := requireSchemaError(t, err)
			assert.Equal(t, tc.path, schemaErr.Path)
		})
	}
}

func TestDecodePlacesResultMalformedJSON(t *testing.T) {
	_, err := DecodePlacesResult(json.RawMessage(`{"results": [`))
	schemaErr := requireSchemaError(t, err)
	assert.True(t, json.Valid(schemaErr.Payload))
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return out
}
