package main

import (
	"flag"
	"io"
)

type AppFlags struct {
	URL              string
	Method           string
	Data             string
	GlobalConfigFile string
}

// ParseFlags parses args (without the program name). Short aliases are used
// only when the long flag is empty.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("rawhttpc", flag.ContinueOnError)
	fs.SetOutput(output)

	url := fs.String("url", "", "Target URL. When empty the demonstration sequence from the config is run.")
	urlAlias := fs.String("u", "", "Alias for -url")

	method := fs.String("method", "", "Request method: GET, POST or DELETE (defaults to client_config.default_method)")
	methodAlias := fs.String("X", "", "Alias for -method")

	data := fs.String("data", "", "JSON document sent as the request body")
	dataAlias := fs.String("d", "", "Alias for -data")

	globalConfigFile := fs.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	return AppFlags{
		URL:              firstNonEmpty(*url, *urlAlias),
		Method:           firstNonEmpty(*method, *methodAlias),
		Data:             firstNonEmpty(*data, *dataAlias),
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
