// Package config loads and validates YAML conversion profiles.
//
// A profile bundles everything one conversion needs: source column names for
// the table→document direction, output column names for the
// document→table direction, time parsing rules, and optional smoothing
// parameters. A built-in profile reproduces the WunderLINQ TripLog CSV
// layout so those exports convert without any configuration file.
package config
