package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"127.027621"`, 127.027621},
		{"string with spaces", `" 42 "`, 42},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"bool", `true`, 0},
		{"infinity string", `"Infinity"`, 0},
		{"negative inf string", `"-Inf"`, 0},
		{"nan string", `"NaN"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.expected, f.Float64())
		})
	}
}

func TestTrafficType_Mode(t *testing.T) {
	assert.Equal(t, ModeSubway, TrafficType(1).Mode())
	assert.Equal(t, ModeBus, TrafficType(2).Mode())
	assert.Equal(t, ModeWalk, TrafficType(3).Mode())
	assert.Equal(t, ModeWalk, TrafficType(0).Mode())
	assert.Equal(t, ModeWalk, TrafficType(99).Mode())
}

func TestOptionalInt(t *testing.T) {
	var sp RawSubPath
	require.NoError(t, json.Unmarshal([]byte(`{"trafficType":1,"crowd":"3","bestCar":null}`), &sp))

	assert.True(t, sp.Crowd.Valid)
	assert.Equal(t, 3, sp.Crowd.Value)
	assert.False(t, sp.BestCar.Valid)

	var missing RawSubPath
	require.NoError(t, json.Unmarshal([]byte(`{"trafficType":3}`), &missing))
	assert.False(t, missing.Crowd.Valid)

	out, err := json.Marshal(sp.BestCar)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestRawPath_ProviderPayload(t *testing.T) {
	payload := `{
		"pathType": 1,
		"info": {"totalTime": 31, "totalDistance": "9100"},
		"subPath": [
			{"trafficType": 3, "sectionTime": 4, "distance": 300},
			{"trafficType": 1, "sectionTime": 22, "distance": 8500,
			 "lane": [{"name": "수도권 2호선", "subwayCode": 2}],
			 "passStopList": {"stations": [
				{"index": 0, "stationName": "강남", "x": "127.027621", "y": "37.497942"},
				{"index": 1, "stationName": "역삼", "x": "127.036456", "y": "37.500622"}
			 ]}}
		]
	}`

	var p RawPath
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	require.Len(t, p.SubPath, 2)
	assert.Equal(t, 9100.0, p.Info.TotalDistance.Float64())
	assert.Equal(t, TrafficTypeSubway, p.SubPath[1].TrafficType)
	require.NotNil(t, p.SubPath[1].PassStopList)
	assert.InDelta(t, 37.497942, p.SubPath[1].PassStopList.Stations[0].Y.Float64(), 1e-9)
}
