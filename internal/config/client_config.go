package config

import "github.com/aleister1102/rawhttpc/internal/rawhttp"

// ClientConfig defines configuration for the raw HTTP client
type ClientConfig struct {
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	// Port is dialed for every scheme; https is not special-cased
	Port          int    `json:"port,omitempty" yaml:"port,omitempty" validate:"min=1,max=65535"`
	DefaultMethod string `json:"default_method,omitempty" yaml:"default_method,omitempty" validate:"omitempty,httpmethod"`
}

// NewDefaultClientConfig creates default client configuration
func NewDefaultClientConfig() ClientConfig {
	return ClientConfig{
		UserAgent:     rawhttp.DefaultUserAgent,
		Port:          rawhttp.DefaultPort,
		DefaultMethod: DefaultClientMethod,
	}
}
