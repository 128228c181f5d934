package pipeline

import "atrack-svr/internal/codec"

// Record is one decoded report line, ready for the downstream sinks.
type Record struct {
	DeviceID  uint64               `json:"device_id"`
	Timestamp int64                `json:"ts"` // nanoseconds
	Values    []codec.DecodedValue `json:"values"`
}
