package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/spotid/errutil"
	"github.com/xeptore/spotid/log"
	"github.com/xeptore/spotid/spotify"
)

func newParseCommand() *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "Parse Spotify URIs and report their structure",
		ArgsUsage: "URI [URI...]",
		Action:    runParse,
	}
}

func runParse(cliCtx *cli.Context) error {
	logger := log.NewPretty(os.Stderr).Level(zerolog.InfoLevel)
	cfg, err := loadConfig(cliCtx, logger)
	if nil != err {
		return err
	}

	inputs := cliCtx.Args().Slice()
	if len(inputs) == 0 {
		return errors.New("at least one URI argument is required")
	}

	reports := make([]uriReport, 0, len(inputs))
	for _, input := range inputs {
		u, err := spotify.Parse(input)
		if nil != err {
			flawP := flaw.P{"input": input, "err_debug_tree": errutil.Tree(err).FlawP()}
			return flaw.From(fmt.Errorf("failed to parse %q: %v", input, err)).Append(flawP)
		}
		reports = append(reports, newURIReport(input, u))
	}

	return renderReports(os.Stdout, cfg, reports)
}
