package config

const (
	// Client Defaults; user agent and port come from rawhttp
	DefaultClientMethod = "GET"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Demo Defaults
	DefaultDemoURL     = "https://jsonplaceholder.typicode.com/posts/2"
	DefaultDemoPostURL = "https://jsonplaceholder.typicode.com/comments"

	// ConfigPathEnv overrides the config file location
	ConfigPathEnv = "RAWHTTPC_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)
