package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"
	"golang.org/x/sync/errgroup"

	"github.com/xeptore/spotid/cache"
	"github.com/xeptore/spotid/errutil"
	"github.com/xeptore/spotid/log"
	"github.com/xeptore/spotid/must"
	"github.com/xeptore/spotid/spotify"
)

func newClassifyCommand() *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:   "classify",
		Usage:  "Read URIs from stdin and summarize them by kind",
		Action: runClassify,
	}
}

type classifier struct {
	mutex   sync.Mutex
	counts  map[string]uint64
	invalid uint64
	cache   *cache.Cache
	logger  zerolog.Logger
}

func (c *classifier) classify(line string) {
	item, err := c.cache.ParsedURIs.Fetch(line, cache.DefaultParsedURITTL, func() (spotify.URI, error) {
		return spotify.Parse(line)
	})

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if nil != err {
		c.invalid++
		c.logger.Warn().Str("input", line).Err(err).Msg("Skipping invalid URI")
		return
	}
	c.counts[kindOf(item.Value())]++
}

func runClassify(cliCtx *cli.Context) error {
	ctx, cancel := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.NewPretty(os.Stderr).Level(zerolog.InfoLevel)
	cfg, err := loadConfig(cliCtx, logger)
	if nil != err {
		return err
	}

	c := &classifier{
		mutex:   sync.Mutex{},
		counts:  make(map[string]uint64),
		invalid: 0,
		cache:   cache.New(),
		logger:  logger.With().Str("module", "classifier").Logger(),
	}

	wg, ctx := errgroup.WithContext(ctx)
	wg.SetLimit(cfg.Workers)

	scanner := bufio.NewScanner(os.Stdin)
	var total uint64
	for scanner.Scan() {
		if errutil.IsContext(ctx) {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		total++
		wg.Go(func() (err error) {
			defer func() {
				if r := recover(); nil != r {
					c.logger.Error().Func(log.Panic(r)).Msg("Recovered from panic while classifying")
					err = fmt.Errorf("classify worker panicked")
				}
			}()
			c.classify(line)
			return nil
		})
	}
	if err := scanner.Err(); nil != err {
		flawP := flaw.P{"err_debug_tree": errutil.Tree(err).FlawP()}
		return flaw.From(fmt.Errorf("failed to read stdin: %v", err)).Append(flawP)
	}
	if err := wg.Wait(); nil != err {
		switch {
		case errutil.IsContext(ctx):
			return ctx.Err()
		case errutil.IsFlaw(err):
			return must.BeFlaw(err).Append(flaw.P{"total": total})
		default:
			panic(errutil.UnknownError(err))
		}
	}

	lines := lo.MapToSlice(c.counts, func(kind string, n uint64) string {
		return fmt.Sprintf("%s\t%d", kind, n)
	})
	slices.Sort(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(os.Stdout, line); nil != err {
			return fmt.Errorf("failed to write summary line: %v", err)
		}
	}

	logger.Info().
		Uint64("total", total).
		Uint64("invalid", c.invalid).
		Msg("Classification finished")
	return nil
}
