package rawhttp

import (
	"github.com/rs/zerolog"
)

// ClientBuilder builds clients with fluent interface
type ClientBuilder struct {
	config   ClientConfig
	logger   zerolog.Logger
	dialer   Dialer
	resolver Resolver
}

// NewClientBuilder creates a new ClientBuilder with default configuration
func NewClientBuilder(logger zerolog.Logger) *ClientBuilder {
	return &ClientBuilder{
		config: DefaultClientConfig(),
		logger: logger,
	}
}

// WithConfig replaces the whole configuration
func (b *ClientBuilder) WithConfig(config ClientConfig) *ClientBuilder {
	b.config = config
	return b
}

// WithUserAgent sets the User-Agent header
func (b *ClientBuilder) WithUserAgent(userAgent string) *ClientBuilder {
	b.config.UserAgent = userAgent
	return b
}

// WithPort sets the port dialed for every request
func (b *ClientBuilder) WithPort(port int) *ClientBuilder {
	b.config.Port = port
	return b
}

// WithDialer overrides the dialer used for the probe and the real connection
func (b *ClientBuilder) WithDialer(dialer Dialer) *ClientBuilder {
	b.dialer = dialer
	return b
}

// WithResolver overrides the DNS resolver
func (b *ClientBuilder) WithResolver(resolver Resolver) *ClientBuilder {
	b.resolver = resolver
	return b
}

// Build creates and returns a new Client
func (b *ClientBuilder) Build() (*Client, error) {
	if b.config.Port < 0 || b.config.Port > 65535 {
		return nil, &ValidationError{Field: "port", Value: b.config.Port, Message: "port must be between 1 and 65535"}
	}

	client := NewClient(b.config, b.logger)
	if b.dialer != nil {
		client.dialer = b.dialer
	}
	if b.resolver != nil {
		client.resolver = b.resolver
	}
	return client, nil
}
