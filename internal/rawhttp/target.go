package rawhttp

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// hostProfile maps hosts the way a lookup would but still accepts
// underscores and other non-STD3 characters.
var hostProfile = idna.New(idna.MapForLookup(), idna.StrictDomainName(false))

// target is the part of a request URL the client actually uses.
// Scheme, port, query and fragment are dropped.
type target struct {
	host string
	path string
}

// parseTarget extracts host and path from rawURL.
func parseTarget(rawURL string) (target, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return target{}, NewInvalidURLError(err.Error(), err)
	}
	if !parsed.IsAbs() {
		return target{}, NewInvalidURLError("relative URL without a base", nil)
	}
	// the port is never dialed but must still be a valid port number
	if port := parsed.Port(); port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return target{}, NewInvalidURLError("invalid port number", err)
		}
	}

	host := parsed.Hostname()
	if host == "" {
		return target{}, NewInvalidURLError("missing host", nil)
	}

	if net.ParseIP(host) == nil {
		ascii, err := hostProfile.ToASCII(host)
		if err != nil {
			return target{}, NewInvalidURLError(err.Error(), err)
		}
		host = ascii
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}

	return target{host: host, path: path}, nil
}

// hostHeader returns the host as it appears in the Host header.
func (t target) hostHeader() string {
	if strings.Contains(t.host, ":") {
		return "[" + t.host + "]"
	}
	return t.host
}
