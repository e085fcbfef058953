package request_models

import (
	"encoding/json"
	"time"
)

// CreateHRVRequest accepts whatever a device measured; every field is optional.
type CreateHRVRequest struct {
	Timestamp   *time.Time      `json:"timestamp"`
	RMSSD       *float64        `json:"rmssd"`
	PNN50       *float64        `json:"pnn50"`
	HeartRate   *int            `json:"heartRate"`
	StressLevel *int            `json:"stressLevel"`
	Source      string          `json:"source"`
	RawData     json.RawMessage `json:"rawData"`
}
