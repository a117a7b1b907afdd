package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/spotid/config"
	"github.com/xeptore/spotid/constant"
	"github.com/xeptore/spotid/log"
)

const (
	flagConfigFilePath = "config"
)

func main() {
	logger := log.NewPretty(os.Stderr).Level(zerolog.InfoLevel)
	if err := godotenv.Load(); nil != err {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Msg(".env file was not found")
		} else {
			logger.Fatal().Err(err).Msg("Failed to load .env file")
		}
	}

	//nolint:exhaustruct
	app := &cli.App{
		Name:    constant.AppName,
		Version: constant.Version,
		Suggest: true,
		Usage:   "Spotify identifier and URI toolbox",
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:     flagConfigFilePath,
				Aliases:  []string{"c"},
				Usage:    "Config file path",
				Required: false,
			},
		},
		Commands: []*cli.Command{
			newParseCommand(),
			newIDCommand(),
			newFormatCommand(),
			newClassifyCommand(),
		},
	}

	if err := app.Run(os.Args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Application was canceled")
			return
		}
		if flawErr := new(flaw.Flaw); errors.As(err, &flawErr) {
			logger.Fatal().Func(log.Flaw(flawErr)).Msg("Application exited with flaw")
			return
		}
		logger.Fatal().Err(err).Msg("Application exited with error")
	}
}

// loadConfig resolves configuration from the --config flag, the CONFIG
// environment variable, or built-in defaults, in that order of preference.
// Flag and environment variable are mutually exclusive.
func loadConfig(cliCtx *cli.Context, logger zerolog.Logger) (*config.Config, error) {
	var (
		cfgFilePath = cliCtx.String(flagConfigFilePath)
		cfgEnv      = os.Getenv("CONFIG")
	)
	switch {
	case cfgFilePath != "" && cfgEnv != "":
		return nil, errors.New("config file path and config environment variable are both set. specify only one")
	case cfgFilePath != "":
		logger.Debug().Str("config_file_path", cfgFilePath).Msg("Loading config from file")
		cfg, err := config.FromFile(cfgFilePath)
		if nil != err {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}
		return cfg, nil
	case cfgEnv != "":
		logger.Debug().Msg("Loading config from environment variable")
		cfg, err := config.FromString(cfgEnv)
		if nil != err {
			return nil, fmt.Errorf("failed to load config from environment variable: %v", err)
		}
		return cfg, nil
	default:
		return config.Default(), nil
	}
}
