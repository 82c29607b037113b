package rawhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"created", "HTTP/1.1 201 Created\r\n\r\n", 201},
		{"no phrase", "HTTP/1.1 404\r\n", 404},
		{"extra spaces", "HTTP/1.1    500   Internal Server Error", 500},
		{"missing code", "HTTP/1.1\r\n", 0},
		{"not a number", "HTTP/1.1 abc OK\r\n", 0},
		{"overflow", "HTTP/1.1 70000 Big\r\n", 0},
		{"negative", "HTTP/1.1 -1 Neg\r\n", 0},
		{"leading plus", "HTTP/1.1 +201 Created\r\n", 201},
		{"double plus", "HTTP/1.1 ++201 Created\r\n", 0},
		{"plus only", "HTTP/1.1 + Created\r\n", 0},
		{"empty", "", 0},
		{"only code on later line", "garbage\r\nHTTP/1.1 200 OK\r\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatusCode(tt.raw))
		})
	}
}

func TestParseHeaders(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"X-Ratio: a: b\r\n" +
		"Server: test\r\n" +
		"\r\n" +
		"Ignored: after-blank\r\n"

	headers := ParseHeaders(raw)

	require.Len(t, headers, 3)
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.Equal(t, "a: b", headers["X-Ratio"])
	assert.Equal(t, "test", headers["Server"])
	assert.NotContains(t, headers, "Ignored")
}

func TestParseHeaders_NoSeparator(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nbroken-header\r\nColon:without-space\r\n\r\n"

	headers := ParseHeaders(raw)

	require.Len(t, headers, 2)
	v, ok := headers["broken-header"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
	v, ok = headers["Colon:without-space"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestParseHeaders_LaterDuplicateOverwrites(t *testing.T) {
	headers := ParseHeaders("HTTP/1.1 200 OK\r\nSet-Cookie: a=1\r\nSet-Cookie: b=2\r\n\r\n")
	assert.Len(t, headers, 1)
	assert.Equal(t, "b=2", headers["Set-Cookie"])
}

func TestParseHeaders_NoBlankLine(t *testing.T) {
	headers := ParseHeaders("HTTP/1.1 200 OK\nA: 1\nB: 2")
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, headers)
}

func TestParseHeaders_StatusLineOnly(t *testing.T) {
	assert.Empty(t, ParseHeaders("HTTP/1.1 204 No Content"))
	assert.Empty(t, ParseHeaders(""))
}

func TestExtractJSONBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"object", "HTTP/1.1 200 OK\r\n\r\n{\"id\":101}", "{\"id\":101}"},
		{"nested", "head {\"a\":{\"b\":1}} tail", "{\"a\":{\"b\":1}}"},
		{"no open brace", "abc}def", "abc}"},
		{"no close brace", "abc{def", "{def"},
		{"no braces", "plain text", "plain text"},
		{"close before open", "a}b{c", ""},
		{"empty", "", ""},
		{"two objects", "{\"a\":1}\n{\"b\":2}", "{\"a\":1}\n{\"b\":2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONBody(tt.raw))
		})
	}
}

func TestParseResponse(t *testing.T) {
	raw := "HTTP/1.1 201 Created\r\nContent-Type: application/json\r\n\r\n{\"id\":101}"

	resp := ParseResponse(raw)

	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "Created", resp.StatusText)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "{\"id\":101}", resp.JSONBody)
}

func TestParseResponse_ServerPhraseIgnored(t *testing.T) {
	resp := ParseResponse("HTTP/1.1 200 Everything Fine\r\n\r\n")
	assert.Equal(t, "OK", resp.StatusText)

	resp = ParseResponse("HTTP/1.1 299 Custom\r\n\r\n")
	assert.Equal(t, 299, resp.StatusCode)
	assert.Equal(t, "Unknown", resp.StatusText)
}
