package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xeptore/spotid/spotify"
)

const (
	flagFormatType     = "type"
	flagFormatID       = "id"
	flagFormatUsername = "username"
	flagFormatNumber   = "number"
	flagFormatArtist   = "artist"
	flagFormatAlbum    = "album"
	flagFormatTrack    = "track"
	flagFormatDuration = "duration"
)

func newFormatCommand() *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:  "format",
		Usage: "Build canonical Spotify URIs from their parts",
		Subcommands: []*cli.Command{
			//nolint:exhaustruct
			{
				Name:   "item",
				Usage:  "Build a catalog item URI",
				Action: runFormatItem,
				Flags:  itemFlags(),
			},
			//nolint:exhaustruct
			{
				Name:   "user",
				Usage:  "Build a user-scoped item URI",
				Action: runFormatUser,
				Flags: append(itemFlags(),
					//nolint:exhaustruct
					&cli.StringFlag{Name: flagFormatUsername, Usage: "Owning username", Required: true},
				),
			},
			//nolint:exhaustruct
			{
				Name:   "station",
				Usage:  "Build a recommendation station URI",
				Action: runFormatStation,
				Flags:  itemFlags(),
			},
			//nolint:exhaustruct
			{
				Name:   "page",
				Usage:  "Build a metadata page URI",
				Action: runFormatPage,
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.Uint64Flag{Name: flagFormatNumber, Usage: "Page number", Required: true},
				},
			},
			//nolint:exhaustruct
			{
				Name:   "local",
				Usage:  "Build a local track URI",
				Action: runFormatLocal,
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.StringFlag{Name: flagFormatArtist, Usage: "Artist name", Required: false},
					//nolint:exhaustruct
					&cli.StringFlag{Name: flagFormatAlbum, Usage: "Album title", Required: false},
					//nolint:exhaustruct
					&cli.StringFlag{Name: flagFormatTrack, Usage: "Track title", Required: false},
					//nolint:exhaustruct
					&cli.UintFlag{Name: flagFormatDuration, Usage: "Track duration in seconds", Required: false},
				},
			},
		},
	}
}

func itemFlags() []cli.Flag {
	return []cli.Flag{
		//nolint:exhaustruct
		&cli.StringFlag{Name: flagFormatType, Usage: "Item type (album, artist, episode, playlist, show, track)", Required: true},
		//nolint:exhaustruct
		&cli.StringFlag{Name: flagFormatID, Usage: "22-character base62 identifier", Required: true},
	}
}

func itemFromFlags(cliCtx *cli.Context) (spotify.Item, error) {
	typ, ok := spotify.ParseItemType(cliCtx.String(flagFormatType))
	if !ok {
		return spotify.Item{}, fmt.Errorf("unknown item type %q", cliCtx.String(flagFormatType))
	}
	id, err := spotify.IDFromBase62(cliCtx.String(flagFormatID))
	if nil != err {
		return spotify.Item{}, fmt.Errorf("failed to decode identifier: %v", err)
	}
	return spotify.Item{Type: typ, ID: id}, nil
}

func printURI(u spotify.URI) error {
	if _, err := fmt.Fprintln(os.Stdout, u.String()); nil != err {
		return fmt.Errorf("failed to write URI: %v", err)
	}
	return nil
}

func runFormatItem(cliCtx *cli.Context) error {
	item, err := itemFromFlags(cliCtx)
	if nil != err {
		return err
	}
	return printURI(spotify.ItemURI{Item: item})
}

func runFormatUser(cliCtx *cli.Context) error {
	username := cliCtx.String(flagFormatUsername)
	if username == "" {
		return errors.New("username is empty")
	}
	item, err := itemFromFlags(cliCtx)
	if nil != err {
		return err
	}
	return printURI(spotify.UserURI{Username: username, Item: item})
}

func runFormatStation(cliCtx *cli.Context) error {
	item, err := itemFromFlags(cliCtx)
	if nil != err {
		return err
	}
	return printURI(spotify.StationURI{Item: item})
}

func runFormatPage(cliCtx *cli.Context) error {
	return printURI(spotify.MetaURI{Meta: spotify.MetaItem{Page: cliCtx.Uint64(flagFormatNumber)}})
}

func runFormatLocal(cliCtx *cli.Context) error {
	duration := cliCtx.Uint(flagFormatDuration)
	if duration > 1<<32-1 {
		return errors.New("duration does not fit in 32 bits")
	}
	return printURI(spotify.LocalURI{Local: spotify.LocalItem{
		Artist:     cliCtx.String(flagFormatArtist),
		AlbumTitle: cliCtx.String(flagFormatAlbum),
		TrackTitle: cliCtx.String(flagFormatTrack),
		DurationS:  uint32(duration),
	}})
}
