package telemetry

// Namespace is the XML namespace all telemetry extensions are emitted under.
// Keep it stable once files start being generated: consumers resolve tags
// against this exact URI.
const Namespace = "https://wunderlinq.local/ns/1"

// NamespacePrefix is the prefix registered on the root element of every
// generated document.
const NamespacePrefix = "wlinq"

// Field is one entry of the telemetry catalogue: a logical field name used
// on the configuration surface, the extension tag it is written as, and a
// human-readable unit.
type Field struct {
	Name string
	Tag  string
	Unit string
}

// FieldAltitude mirrors the native elevation into the telemetry namespace so
// extension-only consumers still get a unit-explicit altitude copy.
const FieldAltitude = "altitude"

// Catalogue lists every telemetry field in emission order. Extension entries
// on an output point always appear in this order, regardless of input column
// order.
var Catalogue = []Field{
	{Name: "speed", Tag: "speed_kmh", Unit: "km/h"},
	{Name: "gps_speed", Tag: "gps_speed_kmh", Unit: "km/h"},
	{Name: FieldAltitude, Tag: "altitude_m", Unit: "m"},
	{Name: "gear", Tag: "gear", Unit: ""},
	{Name: "engine_temp", Tag: "engine_temp_c", Unit: "°C"},
	{Name: "ambient_temp", Tag: "ambient_temp_c", Unit: "°C"},
	{Name: "front_tire_pressure", Tag: "front_tire_pressure_bar", Unit: "bar"},
	{Name: "rear_tire_pressure", Tag: "rear_tire_pressure_bar", Unit: "bar"},
	{Name: "odometer", Tag: "odometer_km", Unit: "km"},
	{Name: "battery_voltage", Tag: "battery_voltage_v", Unit: "V"},
	{Name: "throttle", Tag: "throttle_pct", Unit: "%"},
	{Name: "front_brakes", Tag: "front_brakes", Unit: ""},
	{Name: "rear_brakes", Tag: "rear_brakes", Unit: ""},
	{Name: "shifts", Tag: "shifts", Unit: ""},
	{Name: "vin", Tag: "vin", Unit: ""},
	{Name: "ambient_light", Tag: "ambient_light", Unit: ""},
	{Name: "trip1", Tag: "trip1_km", Unit: "km"},
	{Name: "trip2", Tag: "trip2_km", Unit: "km"},
	{Name: "trip_auto", Tag: "trip_auto_km", Unit: "km"},
	{Name: "avg_speed", Tag: "avg_speed_kmh", Unit: "km/h"},
	{Name: "current_consumption", Tag: "current_consumption_l_per_100km", Unit: "L/100km"},
	{Name: "fuel_economy_1", Tag: "fuel_economy_1_l_per_100km", Unit: "L/100km"},
	{Name: "fuel_economy_2", Tag: "fuel_economy_2_l_per_100km", Unit: "L/100km"},
	{Name: "fuel_range", Tag: "fuel_range_km", Unit: "km"},
	{Name: "lean_angle_mobile", Tag: "lean_angle_mobile_deg", Unit: "deg"},
	{Name: "g_force", Tag: "g_force", Unit: "g"},
	{Name: "bearing", Tag: "bearing_deg", Unit: "deg"},
	{Name: "barometer", Tag: "barometer_kpa", Unit: "kPa"},
	{Name: "rpm", Tag: "rpm", Unit: "rpm"},
	{Name: "lean_angle", Tag: "lean_angle_deg", Unit: "deg"},
	{Name: "rear_wheel_speed", Tag: "rear_wheel_speed_kmh", Unit: "km/h"},
	{Name: "device_battery", Tag: "device_battery_pct", Unit: "%"},
}

// FieldByName returns the catalogue entry for a logical field name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Catalogue {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns the logical names of all catalogue fields in emission
// order.
func FieldNames() []string {
	names := make([]string, 0, len(Catalogue))
	for _, f := range Catalogue {
		names = append(names, f.Name)
	}
	return names
}
