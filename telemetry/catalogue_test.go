package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Downstream consumers match extensions by exact tag name. This test pins
// the wire contract so a rename shows up as a failure, not a silent break.
func TestCatalogueTagsAreStable(t *testing.T) {
	wantTags := []string{
		"speed_kmh",
		"gps_speed_kmh",
		"altitude_m",
		"gear",
		"engine_temp_c",
		"ambient_temp_c",
		"front_tire_pressure_bar",
		"rear_tire_pressure_bar",
		"odometer_km",
		"battery_voltage_v",
		"throttle_pct",
		"front_brakes",
		"rear_brakes",
		"shifts",
		"vin",
		"ambient_light",
		"trip1_km",
		"trip2_km",
		"trip_auto_km",
		"avg_speed_kmh",
		"current_consumption_l_per_100km",
		"fuel_economy_1_l_per_100km",
		"fuel_economy_2_l_per_100km",
		"fuel_range_km",
		"lean_angle_mobile_deg",
		"g_force",
		"bearing_deg",
		"barometer_kpa",
		"rpm",
		"lean_angle_deg",
		"rear_wheel_speed_kmh",
		"device_battery_pct",
	}

	require.Len(t, Catalogue, len(wantTags))
	for i, f := range Catalogue {
		assert.Equal(t, wantTags[i], f.Tag, "field %q", f.Name)
	}
}

func TestCatalogueNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Catalogue {
		require.False(t, seen[f.Name], "duplicate field name %q", f.Name)
		seen[f.Name] = true
	}
}

func TestFieldByName(t *testing.T) {
	f, ok := FieldByName("engine_temp")
	require.True(t, ok)
	assert.Equal(t, "engine_temp_c", f.Tag)

	_, ok = FieldByName("no_such_field")
	assert.False(t, ok)
}

func TestNamespaceIsStable(t *testing.T) {
	assert.Equal(t, "https://wunderlinq.local/ns/1", Namespace)
	assert.Equal(t, "wlinq", NamespacePrefix)
}
