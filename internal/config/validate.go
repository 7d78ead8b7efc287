package config

import (
	"errors"
	"strings"
)

// Validation errors.
var (
	ErrEmptyJava           = errors.New("java cannot be empty")
	ErrInvalidLogLevel     = errors.New("log level must be 'debug', 'info', 'warn' or 'error'")
	ErrInvalidHealthTiming = errors.New("health timings must not be negative")
	ErrPollTooSlow         = errors.New("poll_interval_ms must not exceed wait_timeout_ms")
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the config for values the launcher cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Java) == "" {
		return ErrEmptyJava
	}
	if c.Log.Level != "" && !validLogLevels[strings.ToLower(c.Log.Level)] {
		return ErrInvalidLogLevel
	}
	h := c.Health
	if h.TimeoutMS < 0 || h.PollIntervalMS < 0 || h.WaitTimeoutMS < 0 {
		return ErrInvalidHealthTiming
	}
	if w := c.WaitTimeout(); w > 0 && c.PollInterval() > w {
		return ErrPollTooSlow
	}
	return nil
}
