// Package telemetry defines the fixed catalogue of vehicle telemetry fields
// carried as GPX point extensions, and the namespace they are emitted under.
//
// The catalogue is a wire contract: downstream consumers match extension
// elements by tag name, so tags must stay byte-identical across releases.
// Units are encoded in the tag names themselves (engine_temp_c, odometer_km)
// rather than in attributes, which keeps the emitted GPX readable by tools
// that only understand flat (tag, text) pairs.
package telemetry
