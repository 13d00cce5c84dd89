package config

import "errors"

var (
	// ErrInvalidConfig wraps every Validate failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig wraps failures reading the file or env layers.
	ErrLoadConfig = errors.New("load config failed")
	// ErrUnsupportedFormat is returned for a config file that is not .yaml, .yml, .json or .toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
