package config

// Default values.
const (
	DefaultMaxLineLength = 100
	DefaultBufferSize    = "64KiB"
	DefaultColor         = ColorAuto
	DefaultPrefilter     = true
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = LogFormatText
)
