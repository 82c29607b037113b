package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/aleister1102/rawhttpc/internal/config"
	"github.com/aleister1102/rawhttpc/internal/logger"
	"github.com/aleister1102/rawhttpc/internal/rawhttp"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		bootLogger.Error().Err(err).Str("path", flags.GlobalConfigFile).Msg("Could not load config")
		return 1
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		bootLogger.Error().Err(err).Msg("Could not initialize logger")
		return 1
	}

	client, err := rawhttp.NewClientBuilder(zLogger).
		WithUserAgent(gCfg.ClientConfig.UserAgent).
		WithPort(gCfg.ClientConfig.Port).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not build client")
		return 1
	}

	app := NewApp(client, os.Stdout, os.Stderr, zLogger)

	if flags.URL == "" {
		zLogger.Debug().Str("url", gCfg.DemoConfig.URL).Str("post_url", gCfg.DemoConfig.PostURL).Msg("Running demonstration sequence")
		return app.RunDemo(gCfg.DemoConfig)
	}

	methodName := firstNonEmpty(flags.Method, gCfg.ClientConfig.DefaultMethod)
	method, err := rawhttp.ParseMethod(methodName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	body, err := ParseBody(flags.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	return app.RunSingle(method, flags.URL, body)
}
