package systemconfig

import "context"

const (
	KeyWorkStartTime = "work_start_time"
	KeyWorkEndTime   = "work_end_time"
)

// ConfigRepository reads organization-wide settings stored as key/value text.
type ConfigRepository interface {
	// GetMany returns the stored values for keys. Missing keys are absent from the map.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
}
