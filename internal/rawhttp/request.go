package rawhttp

import (
	"encoding/json"
	"strings"
)

// DefaultUserAgent is sent when the client has no user agent configured.
const DefaultUserAgent = "Go-Raw-HTTP-Client"

// BuildRequest assembles the request text. A nil body sends headers only.
// The body is appended after the blank line with no Content-Length header.
func BuildRequest(method Method, host, path, userAgent string, body any) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(method.String())
	sb.WriteString(" ")
	sb.WriteString(path)
	sb.WriteString(" HTTP/1.1\r\n")
	sb.WriteString("Host: " + host + "\r\n")
	sb.WriteString("User-Agent: " + userAgent + "\r\n")
	sb.WriteString("Connection: close\r\n")
	sb.WriteString("\r\n")

	if body != nil {
		serialized, err := json.Marshal(body)
		if err != nil {
			return nil, NewSerializationError(err)
		}
		sb.Write(serialized)
		sb.WriteString("\r\n")
	}

	return []byte(sb.String()), nil
}
