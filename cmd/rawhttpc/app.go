package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/aleister1102/rawhttpc/internal/config"
	"github.com/aleister1102/rawhttpc/internal/rawhttp"
	"github.com/rs/zerolog"
)

// Requester is the part of rawhttp.Client the CLI depends on
type Requester interface {
	Request(method rawhttp.Method, rawURL string, body any) (*rawhttp.Response, error)
}

// App prints request results and maps outcomes to exit codes
type App struct {
	client Requester
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// NewApp creates an App
func NewApp(client Requester, stdout, stderr io.Writer, logger zerolog.Logger) *App {
	return &App{client: client, stdout: stdout, stderr: stderr, logger: logger}
}

// ParseBody decodes the -data flag. Empty input means no body; a JSON null
// document is kept as a body and sent as null.
func ParseBody(data string) (any, error) {
	if data == "" {
		return nil, nil
	}
	var body any
	if err := json.Unmarshal([]byte(data), &body); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if body == nil {
		return json.RawMessage("null"), nil
	}
	return body, nil
}

// RunSingle performs one request and prints the whole response
func (a *App) RunSingle(method rawhttp.Method, url string, body any) int {
	resp, err := a.client.Request(method, url, body)
	if err != nil {
		a.logger.Error().Err(err).Str("url", url).Msg("Request failed")
		fmt.Fprintf(a.stderr, "Request failed: %v\n", err)
		return 1
	}
	if resp == nil {
		fmt.Fprintln(a.stderr, "Host unreachable, no response received")
		return 1
	}
	a.printResponse(resp)
	return 0
}

// RunDemo posts a comment, deletes a post and fetches it again
func (a *App) RunDemo(demo config.DemoConfig) int {
	var postBody any
	if demo.PostBody != nil {
		postBody = demo.PostBody
	}

	resp, err := a.client.Request(rawhttp.MethodPost, demo.PostURL, postBody)
	switch {
	case err != nil:
		fmt.Fprintf(a.stderr, "Request failed: %v\n", err)
		return 1
	case resp == nil:
		fmt.Fprintln(a.stdout, "Request was successful, but no response received")
	case resp.StatusCode == 201:
		fmt.Fprintln(a.stdout, "Post successful (Status: 201 Created)")
		fmt.Fprintf(a.stdout, "Response JSON body:\n%s\n", resp.JSONBody)
	default:
		a.printUnexpected(resp)
	}

	resp, err = a.client.Request(rawhttp.MethodDelete, demo.URL, nil)
	switch {
	case err != nil:
		fmt.Fprintf(a.stderr, "Request failed: %v\n", err)
		return 1
	case resp == nil:
		fmt.Fprintln(a.stderr, "Connection timeout or invalid URL")
		return 1
	case resp.StatusCode == 200:
		fmt.Fprintln(a.stdout, "Delete successful (Status: 200 OK)")
	case resp.StatusCode == 204:
		fmt.Fprintln(a.stdout, "Delete successful (Status: 204 No Content)")
	default:
		a.printUnexpected(resp)
	}

	return a.RunSingle(rawhttp.MethodGet, demo.URL, nil)
}

func (a *App) printUnexpected(resp *rawhttp.Response) {
	fmt.Fprintf(a.stdout, "Unexpected response: %d %s\n", resp.StatusCode, resp.StatusText)
}

func (a *App) printResponse(resp *rawhttp.Response) {
	fmt.Fprintf(a.stdout, "Response status code: %d\n", resp.StatusCode)
	fmt.Fprintf(a.stdout, "Response status text: %s\n", resp.StatusText)
	fmt.Fprintf(a.stdout, "Response JSON body:\n%s\n", resp.JSONBody)
	fmt.Fprintf(a.stdout, "Duration: %s\n", resp.Duration)
	fmt.Fprintln(a.stdout, "Headers:")

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.stdout, "%s: %s\n", name, resp.Headers[name])
	}
}
