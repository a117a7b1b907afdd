package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/tidwall/pretty"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/spotid/config"
	"github.com/xeptore/spotid/errutil"
	"github.com/xeptore/spotid/spotify"
)

type idReport struct {
	Base62 string `json:"base62"`
	Hex    string `json:"hex"`
}

type localReport struct {
	Artist     string `json:"artist"`
	AlbumTitle string `json:"album_title"`
	TrackTitle string `json:"track_title"`
	DurationS  uint32 `json:"duration_s"`
}

type uriReport struct {
	Input     string       `json:"input"`
	Kind      string       `json:"kind"`
	Canonical string       `json:"canonical"`
	Playable  bool         `json:"playable"`
	ID        *idReport    `json:"id,omitempty"`
	Username  string       `json:"username,omitempty"`
	Page      *uint64      `json:"page,omitempty"`
	Local     *localReport `json:"local,omitempty"`
	Rest      *string      `json:"rest,omitempty"`
}

func newURIReport(input string, u spotify.URI) uriReport {
	out := uriReport{
		Input:     input,
		Kind:      kindOf(u),
		Canonical: u.String(),
		Playable:  u.IsPlayable(),
	}
	switch v := u.(type) {
	case spotify.ItemURI:
		out.ID = &idReport{Base62: v.Item.ID.Base62(), Hex: v.Item.ID.Hex()}
	case spotify.UserURI:
		out.Username = v.Username
		out.ID = &idReport{Base62: v.Item.ID.Base62(), Hex: v.Item.ID.Hex()}
	case spotify.StationURI:
		out.ID = &idReport{Base62: v.Item.ID.Base62(), Hex: v.Item.ID.Hex()}
	case spotify.MetaURI:
		page := v.Meta.Page
		out.Page = &page
	case spotify.LocalURI:
		out.Local = &localReport{
			Artist:     v.Local.Artist,
			AlbumTitle: v.Local.AlbumTitle,
			TrackTitle: v.Local.TrackTitle,
			DurationS:  v.Local.DurationS,
		}
	case spotify.UnknownURI:
		if v.HasRest {
			rest := v.Rest
			out.Rest = &rest
		}
	}
	return out
}

func kindOf(u spotify.URI) string {
	switch v := u.(type) {
	case spotify.ItemURI:
		return string(v.Item.Type)
	case spotify.UserURI:
		return "user:" + string(v.Item.Type)
	case spotify.StationURI:
		return "station:" + string(v.Item.Type)
	case spotify.MetaURI:
		return "meta:page"
	case spotify.LocalURI:
		return "local"
	case spotify.UnknownURI:
		return "unknown:" + v.Word
	default:
		return "unknown"
	}
}

func renderReports(w io.Writer, cfg *config.Config, reports []uriReport) error {
	if cfg.Output == config.OutputJSON {
		b, err := json.MarshalWithOption(reports, json.DisableNormalizeUTF8(), json.DisableHTMLEscape())
		if nil != err {
			flawP := flaw.P{"err_debug_tree": errutil.Tree(err).FlawP()}
			return flaw.From(fmt.Errorf("failed to marshal reports: %v", err)).Append(flawP)
		}
		if _, err := w.Write(pretty.Pretty(b)); nil != err {
			return fmt.Errorf("failed to write reports: %v", err)
		}
		return nil
	}

	for _, r := range reports {
		line := r.Kind + "\t" + r.Canonical + "\tplayable=" + strconv.FormatBool(r.Playable)
		if nil != r.ID {
			line += "\thex=" + r.ID.Hex
		}
		if _, err := fmt.Fprintln(w, line); nil != err {
			return fmt.Errorf("failed to write report line: %v", err)
		}
	}
	return nil
}
