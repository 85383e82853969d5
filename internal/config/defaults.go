package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel    = "info"
	DefaultJSONLog     = false
	DefaultUserAgent   = "Indexables/1.0 (https://github.com/law-makers/indexables)"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultProgress    = true
)
