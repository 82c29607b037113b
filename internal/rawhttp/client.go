package rawhttp

import (
	"context"
	"io"
	"net"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// DefaultPort is used for every scheme, https included. No TLS is negotiated.
const DefaultPort = 80

// Dialer opens TCP connections. *net.Dialer satisfies it.
type Dialer interface {
	Dial(network, address string) (net.Conn, error)
}

// Resolver looks up host addresses. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// ClientConfig holds the settings of a Client
type ClientConfig struct {
	UserAgent string
	Port      int
}

// DefaultClientConfig returns the default client configuration
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		UserAgent: DefaultUserAgent,
		Port:      DefaultPort,
	}
}

// Client performs single blocking HTTP/1.1 exchanges over plain TCP.
// It holds no per-request state and may be shared between goroutines.
type Client struct {
	config   ClientConfig
	dialer   Dialer
	resolver Resolver
	logger   zerolog.Logger
}

// NewClient creates a Client with the standard dialer and resolver
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Port <= 0 {
		config.Port = DefaultPort
	}
	return &Client{
		config:   config,
		dialer:   &net.Dialer{},
		resolver: net.DefaultResolver,
		logger:   logger.With().Str("component", "RawHTTPClient").Logger(),
	}
}

// Request sends one request and reads the response until the server closes
// the connection.
//
// A nil body sends no payload. When the host cannot be reached at all (the
// probe dial and the DNS lookup both fail) Request returns a nil Response and
// a nil error. Any other failure is a *RequestError.
func (c *Client) Request(method Method, rawURL string, body any) (*Response, error) {
	start := time.Now()

	t, err := parseTarget(rawURL)
	if err != nil {
		return nil, err
	}

	address, ok := c.resolveAddress(t.host)
	if !ok {
		c.logger.Warn().Str("host", t.host).Msg("Host unreachable, no response")
		return nil, nil
	}

	serverAddress := net.JoinHostPort(address, strconv.Itoa(c.config.Port))
	conn, err := c.dialer.Dial("tcp", serverAddress)
	if err != nil {
		return nil, NewConnectionError(err)
	}
	defer conn.Close()

	c.logger.Debug().Str("address", serverAddress).Msg("Connected")

	payload, err := BuildRequest(method, t.hostHeader(), t.path, c.config.UserAgent, body)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Write(payload); err != nil {
		return nil, NewConnectionError(err)
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, NewConnectionError(err)
	}
	if !utf8.Valid(raw) {
		return nil, &RequestError{Kind: KindConnection, Message: "stream did not contain valid UTF-8"}
	}

	resp := ParseResponse(string(raw))
	resp.Duration = time.Since(start)

	c.logger.Debug().
		Str("method", method.String()).
		Str("host", t.host).
		Str("path", t.path).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(raw)).
		Dur("duration", resp.Duration).
		Msg("Request completed")

	return resp, nil
}

// resolveAddress picks the dial target for host. A successful probe dial
// keeps the literal host; otherwise the first DNS answer is used. The
// second return value is false when both fail.
func (c *Client) resolveAddress(host string) (string, bool) {
	probe, err := c.dialer.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(c.config.Port)))
	if err == nil {
		_ = probe.Close()
		c.logger.Debug().Str("host", host).Msg("Probe connection succeeded")
		return host, true
	}
	c.logger.Debug().Err(err).Str("host", host).Msg("Probe connection failed, falling back to DNS lookup")

	addrs, err := c.resolver.LookupHost(context.Background(), host)
	if err != nil || len(addrs) == 0 {
		c.logger.Debug().Err(err).Str("host", host).Msg("DNS lookup failed")
		return "", false
	}
	return addrs[0], true
}
