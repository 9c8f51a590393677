package config

// WunderLINQ returns the built-in profile for WunderLINQ TripLog CSV
// exports. Column headers and the timestamp layout match what the app
// writes, e.g. a time column literally named "Time (yyyyMMdd-HH:mm:ss.SSS)".
func WunderLINQ() Profile {
	return Profile{
		Columns: ColumnsConfig{
			Latitude:  "Latitude",
			Longitude: "Longitude",
			Time:      "Time (yyyyMMdd-HH:mm:ss.SSS)",
			Elevation: "Elevation (m)",
			Speed:     "Speed (kmh)",
			Fields: map[string]string{
				"speed":               "Speed (kmh)",
				"gps_speed":           "GPS Speed (kmh)",
				"rear_wheel_speed":    "Rear Wheel Speed (kmh)",
				"rpm":                 "RPM",
				"gear":                "Gear",
				"throttle":            "Throttle Position (%)",
				"engine_temp":         "Engine Temperature (C)",
				"ambient_temp":        "Ambient Temperature (C)",
				"front_tire_pressure": "Front Tire Pressure (bar)",
				"rear_tire_pressure":  "Rear Tire Pressure (bar)",
				"odometer":            "Odometer (km)",
				"battery_voltage":     "Voltage (V)",
				"device_battery":      "Device Battery (%)",
				"front_brakes":        "Front Brakes",
				"rear_brakes":         "Rear Brakes",
				"shifts":              "Shifts",
				"vin":                 "VIN",
				"ambient_light":       "Ambient Light",
				"trip1":               "Trip 1 (km)",
				"trip2":               "Trip 2 (km)",
				"trip_auto":           "Trip Auto (km)",
				"avg_speed":           "Average Speed (kmh)",
				"current_consumption": "Current Consumption (L/100)",
				"fuel_economy_1":      "Fuel Economy 1 (L/100)",
				"fuel_economy_2":      "Fuel Economy 2 (L/100)",
				"fuel_range":          "Fuel Range (km)",
				"lean_angle_mobile":   "Lean Angle Mobile",
				"lean_angle":          "Lean Angle",
				"g_force":             "g-force",
				"bearing":             "Bearing",
				"barometer":           "Barometer (kPa)",
			},
		},
		Time: TimeConfig{
			Layout: "20060102-15:04:05.000",
		},
	}
}
