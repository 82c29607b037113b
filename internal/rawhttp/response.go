package rawhttp

import (
	"strconv"
	"strings"
	"time"
)

// Response is the parsed result of one exchange.
type Response struct {
	StatusCode int
	StatusText string
	// JSONBody is the text between the first '{' and the last '}', inclusive.
	// It is not validated as JSON.
	JSONBody string
	Headers  map[string]string
	Duration time.Duration
}

// ParseResponse parses raw response text. Duration is left to the caller.
func ParseResponse(raw string) *Response {
	code := ParseStatusCode(raw)
	return &Response{
		StatusCode: code,
		StatusText: StatusText(code),
		JSONBody:   ExtractJSONBody(raw),
		Headers:    ParseHeaders(raw),
	}
}

// splitLines splits on '\n' and strips a trailing '\r' from every line.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseStatusCode reads the code from the status line, or 0 when it is
// missing or not a 16-bit unsigned integer.
func ParseStatusCode(raw string) int {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return 0
	}
	fields := strings.Fields(lines[0])
	if len(fields) < 2 {
		return 0
	}
	// a single leading '+' is accepted, "+201" reads as 201
	code, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "+"), 10, 16)
	if err != nil {
		return 0
	}
	return int(code)
}

// ParseHeaders collects the lines between the status line and the first
// empty line. Each line is split on the first ": "; a line without one
// becomes a name with an empty value.
func ParseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	lines := splitLines(raw)
	if len(lines) < 2 {
		return headers
	}
	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		name, value, found := strings.Cut(line, ": ")
		if !found {
			headers[line] = ""
			continue
		}
		headers[name] = value
	}
	return headers
}

// ExtractJSONBody returns raw[first '{' : last '}'+1]. Without a '{' the
// slice starts at 0, without a '}' it runs to the end.
func ExtractJSONBody(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		start = 0
	}
	end := strings.LastIndexByte(raw, '}')
	if end < 0 {
		end = len(raw)
	} else {
		end++
	}
	if end < start {
		return ""
	}
	return raw[start:end]
}
