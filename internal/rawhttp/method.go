package rawhttp

import (
	"fmt"
	"strings"
)

// Method is the request method. Only the three methods below are supported.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodDelete
)

// String returns the method token written on the request line
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodDelete:
		return "DELETE"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses a method name, ignoring case
func ParseMethod(name string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "DELETE":
		return MethodDelete, nil
	default:
		return 0, fmt.Errorf("unsupported method %q", name)
	}
}
