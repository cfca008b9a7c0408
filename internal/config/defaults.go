package config

const (
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
	defaultGroup              = true
	defaultMaxGapSeconds      = 2.0
	defaultMinDurationSeconds = 30.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Segmenter: Segmenter{
			Group:              defaultGroup,
			MaxGapSeconds:      defaultMaxGapSeconds,
			MinDurationSeconds: defaultMinDurationSeconds,
		},
	}
}
