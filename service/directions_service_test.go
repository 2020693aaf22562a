package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"maps-gateway/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectionsService(t *testing.T, provider *stubProvider) *DirectionsService {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return NewDirectionsService(testLogger(t), provider, loc)
}

func TestGetDirectionsDeparture(t *testing.T) {
	provider := &stubProvider{routes: []json.RawMessage{json.RawMessage(walkingRouteJSON)}}
	svc := newTestDirectionsService(t, provider)

	routes, err := svc.GetDirections(context.Background(), model.DirectionsRequest{
		Origin:      "東京駅",
		Destination: "新宿駅",
		TargetTime:  "2024-05-01T09:00:00",
	})
	require.NoError(t, err)
	require.Len(t, routes, 1)

	require.Len(t, provider.directionsArgs, 1)
	params := provider.directionsArgs[0]
	assert.Equal(t, "東京駅", params.Origin)
	assert.Equal(t, model.TravelModeTransit, params.Mode)
	assert.Equal(t, model.TransitModeRail, params.TransitMode)
	assert.Equal(t, model.LanguageJA, params.Language)
	require.NotNil(t, params.DepartureTime)
	assert.Equal(t, int64(1714521600), *params.DepartureTime)
	assert.Nil(t, params.ArrivalTime)
}

func TestGetDirectionsArrival(t *testing.T) {
	provider := &stubProvider{routes: []json.RawMessage{json.RawMessage(walkingRouteJSON)}}
	svc := newTestDirectionsService(t, provider)

	_, err := svc.GetDirections(context.Background(), model.DirectionsRequest{
		Origin:      "東京駅",
		Destination: "新宿駅",
		TargetTime:  "2024-05-01T00:00:00Z",
		TimeMode:    model.TimeModeArrival,
	})
	require.NoError(t, err)

	params := provider.directionsArgs[0]
	require.NotNil(t, params.ArrivalTime)
	assert.Equal(t, int64(1714521600), *params.ArrivalTime)
	assert.Nil(t, params.DepartureTime)

	values := params.Values()
	assert.Equal(t, "1714521600", values.Get("arrival_time"))
	assert.Empty(t, values.Get("departure_time"))
	assert.Equal(t, "rail", values.Get("transit_mode"))
}

func TestGetDirectionsInvalidRequestMakesNoProviderCall(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestDirectionsService(t, provider)

	for _, req := range []model.DirectionsRequest{
		{Origin: "", Destination: "B", TargetTime: "2024-05-01T09:00:00"},
		{Origin: "A", Destination: "B", TargetTime: "2024-05-01T09:00:00", Mode: "teleport"},
		{Origin: "A", Destination: "B", TargetTime: "soon"},
		{Origin: "A", Destination: "B"},
	} {
		_, err := svc.GetDirections(context.Background(), req)
		var validationErr *model.ValidationError
		assert.True(t, errors.As(err, &validationErr), "request %+v", req)
	}

	assert.Zero(t, provider.calls())
}

func TestGetDirectionsEmptyResultIsEmptySlice(t *testing.T) {
	svc := newTestDirectionsService(t, &stubProvider{})

	routes, err := svc.GetDirections(context.Background(), model.DirectionsRequest{
		Origin: "東京駅", Destination: "ホノルル", TargetTime: "2024-05-01T09:00:00",
	})
	require.NoError(t, err)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)

	body, err := json.Marshal(routes)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestGetDirectionsPropagatesSchemaError(t *testing.T) {
	broken := mutateJSON(t, walkingRouteJSON, func(doc map[string]any) { delete(firstLeg(doc), "steps") })
	svc := newTestDirectionsService(t, &stubProvider{routes: []json.RawMessage{broken}})

	_, err := svc.GetDirections(context.Background(), model.DirectionsRequest{
		Origin: "A", Destination: "B", TargetTime: "2024-05-01T09:00:00",
	})
	schemaErr := requireSchemaError(t, err)
	assert.Equal(t, "routes[0].legs[0].steps", schemaErr.Path)
}

func TestGetDirectionsPropagatesProviderError(t *testing.T) {
	providerErr := &model.ProviderError{API: "directions", Status: "REQUEST_DENIED"}
	svc := newTestDirectionsService(t, &stubProvider{err: providerErr})

	_, err := svc.GetDirections(context.Background(), model.DirectionsRequest{
		Origin: "A", Destination: "B", TargetTime: "2024-05-01T09:00:00",
	})
	assert.ErrorIs(t, err, providerErr)
}

func TestNewDirectionsParamsTimeModes(t *testing.T) {
	base := model.DirectionsRequest{
		Origin: "A", Destination: "B", TargetTime: "2024-05-01T09:00:00+09:00",
		Mode: model.TravelModeDriving, TransitMode: model.TransitModeBus, Language: model.LanguageEN,
	}

	departure := base
	departure.TimeMode = model.TimeModeDeparture
	params, err := NewDirectionsParams(departure)
	require.NoError(t, err)
	require.NotNil(t, params.DepartureTime)
	assert.Nil(t, params.ArrivalTime)

	arrival := base
	arrival.TimeMode = model.TimeModeArrival
	params, err = NewDirectionsParams(arrival)
	require.NoError(t, err)
	require.NotNil(t, params.ArrivalTime)
	assert.Nil(t, params.DepartureTime)
	assert.Equal(t, "false", params.Values().Get("alternatives"))
}
