package config

import "github.com/lone-faerie/tempconv/log"

// LogConfig is the configuration for logging.
type LogConfig struct {
	// Level is the minimum severity logged.
	Level log.Level `yaml:"level"`
	// File is the log file events are appended to. Log lines are
	// mirrored to stdout. The special value "stdout" logs to the
	// console only and "discard" disables logging.
	File string `yaml:"file"`
	// Format is the log format, "text" (default) or "json".
	Format string `yaml:"format,omitempty"`
}

// DefaultLog is the logging configuration used when no config file
// provides one.
var DefaultLog = LogConfig{
	Level: log.LevelInfo,
	File:  "temperature_converter.log",
}
