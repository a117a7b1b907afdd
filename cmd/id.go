package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/spotid/config"
	"github.com/xeptore/spotid/errutil"
	"github.com/xeptore/spotid/log"
	"github.com/xeptore/spotid/spotify"
)

const (
	flagIDHex    = "hex"
	flagIDBase62 = "base62"
)

func newIDCommand() *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:   "id",
		Usage:  "Convert a 128-bit identifier between its encodings",
		Action: runID,
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:     flagIDHex,
				Usage:    "32-character lowercase hex identifier",
				Required: false,
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:     flagIDBase62,
				Usage:    "22-character base62 identifier",
				Required: false,
			},
		},
	}
}

func runID(cliCtx *cli.Context) error {
	logger := log.NewPretty(os.Stderr).Level(zerolog.InfoLevel)
	cfg, err := loadConfig(cliCtx, logger)
	if nil != err {
		return err
	}

	var (
		hexStr    = cliCtx.String(flagIDHex)
		base62Str = cliCtx.String(flagIDBase62)
		id        spotify.ID
	)
	switch {
	case hexStr != "" && base62Str != "":
		return errors.New("--hex and --base62 are mutually exclusive. specify only one")
	case hexStr == "" && base62Str == "":
		return errors.New("either --hex or --base62 is required")
	case hexStr != "":
		id, err = spotify.IDFromHex(hexStr)
		if nil != err {
			flawP := flaw.P{"input": hexStr, "err_debug_tree": errutil.Tree(err).FlawP()}
			return flaw.From(fmt.Errorf("failed to decode hex identifier: %v", err)).Append(flawP)
		}
	default:
		id, err = spotify.IDFromBase62(base62Str)
		if nil != err {
			flawP := flaw.P{"input": base62Str, "err_debug_tree": errutil.Tree(err).FlawP()}
			return flaw.From(fmt.Errorf("failed to decode base62 identifier: %v", err)).Append(flawP)
		}
	}

	raw := id.Bytes()
	if cfg.Output == config.OutputJSON {
		out := struct {
			Base62 string `json:"base62"`
			Hex    string `json:"hex"`
			Bytes  []byte `json:"bytes"`
		}{
			Base62: id.Base62(),
			Hex:    id.Hex(),
			Bytes:  raw[:],
		}
		b, err := json.MarshalWithOption(out, json.DisableNormalizeUTF8(), json.DisableHTMLEscape())
		if nil != err {
			flawP := flaw.P{"err_debug_tree": errutil.Tree(err).FlawP()}
			return flaw.From(fmt.Errorf("failed to marshal identifier: %v", err)).Append(flawP)
		}
		if _, err := os.Stdout.Write(pretty.Pretty(b)); nil != err {
			return fmt.Errorf("failed to write identifier: %v", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(os.Stdout, "base62\t%s\nhex\t%s\n", id.Base62(), id.Hex()); nil != err {
		return fmt.Errorf("failed to write identifier: %v", err)
	}
	return nil
}
