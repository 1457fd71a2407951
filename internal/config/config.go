// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file and environment overrides in Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxSessions bounds the number of concurrent measurement sessions.
	// Zero means unbounded.
	MaxSessions int `koanf:"max_sessions"`

	// MaxUploadBytes caps the accepted photo upload size.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// HitRadius is the touch slop for grabbing a point, in display units.
	HitRadius float64 `koanf:"hit_radius"`

	// DefaultBreed and DefaultCondition seed new sessions.
	DefaultBreed     string `koanf:"default_breed"`
	DefaultCondition string `koanf:"default_condition"`

	// UseDetectorHints enables hint-driven point placement when a load
	// request carries landmarks. Placement falls back to the center
	// heuristic when off or when no hints arrive.
	UseDetectorHints bool `koanf:"use_detector_hints"`
}

// Default configuration values.
const (
	defaultAddr           = ":9080"
	defaultMaxSessions    = 10_000
	defaultMaxUploadBytes = 20 << 20 // 20 MiB
	defaultHitRadius      = 30.0
)

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             defaultAddr,
		MaxSessions:      defaultMaxSessions,
		MaxUploadBytes:   defaultMaxUploadBytes,
		HitRadius:        defaultHitRadius,
		DefaultBreed:     "other",
		DefaultCondition: "average",
		UseDetectorHints: true,
	}
}
