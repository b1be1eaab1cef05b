package jsonrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "strips surrounding prose",
			raw:  "Here is your plan:\n{\"days\": []}\nEnjoy!",
			want: `{"days": []}`,
		},
		{
			name: "already bare JSON",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name:    "no object at all",
			raw:     "sorry, I cannot help with that",
			wantErr: true,
		},
		{
			name:    "closing brace before opening",
			raw:     "} nothing {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirect(t *testing.T) {
	result, err := Parse(`{"cost_breakdown": {"total": 1200}}`, SkeletonSpec{Days: 3})
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, result.Strategy)

	breakdown := result.Value["cost_breakdown"].(map[string]interface{})
	assert.Equal(t, float64(1200), breakdown["total"])
}

func TestParseRepaired(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing comma in array", `{"tips": ["a", "b",]}`},
		{"trailing comma in object", `{"a": 1,}`},
		{"single quotes", `{'tips': ['pack light']}`},
		{"line comment", "{\"a\": 1 // the budget\n}"},
		{"block comment", `{"a": /* inline */ 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input, SkeletonSpec{Days: 1})
			require.NoError(t, err)
			assert.Equal(t, StrategyRepaired, result.Strategy)
		})
	}
}

func TestParseSkeletonFromDayMarkers(t *testing.T) {
	// Unrepairable, but the day markers survive.
	input := `{"days": [{"day": 1, "name": }, {"day": 2, "name": }, {"day": 3, "name": }`

	result, err := Parse(input, SkeletonSpec{Days: 5, Destination: "Tokyo", Budget: 5000})
	require.NoError(t, err)
	assert.Equal(t, StrategySkeleton, result.Strategy)

	days := result.Value["daily_plans"].([]interface{})
	assert.Len(t, days, 3)

	first := days[0].(map[string]interface{})
	assert.Equal(t, 1, first["day"])
	activities := first["activities"].([]interface{})
	require.Len(t, activities, 1)
	activity := activities[0].(map[string]interface{})
	assert.Equal(t, "Tokyo", activity["location"])
	assert.Equal(t, float64(1000), activity["estimated_cost"])

	tips := result.Value["tips"].([]interface{})
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "degraded")
}

func TestParseSkeletonWithoutMarkers(t *testing.T) {
	result, err := Parse(`{"oops": `, SkeletonSpec{Days: 4, Destination: "Kyoto", Budget: 4000})
	require.NoError(t, err)
	assert.Equal(t, StrategySkeleton, result.Strategy)

	// No "day": n markers at all: exactly one placeholder per requested day.
	days := result.Value["daily_plans"].([]interface{})
	require.Len(t, days, 4)
	for i, raw := range days {
		day := raw.(map[string]interface{})
		assert.Equal(t, i+1, day["day"])
	}
	assert.Equal(t, float64(4000), result.Value["estimated_cost"])
}

func TestParseSkeletonCapsAtRequestedDays(t *testing.T) {
	input := `{"day": 1, "day": 2, "day": 3, "day": 4, `

	result, err := Parse(input, SkeletonSpec{Days: 2, Destination: "Osaka", Budget: 200})
	require.NoError(t, err)
	assert.Len(t, result.Value["daily_plans"], 2)
}

func TestParseAllStrategiesFail(t *testing.T) {
	// Days: 0 disables the skeleton tier as well.
	_, err := Parse(`{"broken": `, SkeletonSpec{Days: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), StrategyDirect)
	assert.Contains(t, err.Error(), StrategyRepaired)
	assert.Contains(t, err.Error(), StrategySkeleton)
}
