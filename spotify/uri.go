package spotify

import (
	"strconv"
	"strings"
)

// URI is any URI with the "spotify" scheme. For example,
// "spotify:track:5sWHDYs0csV6RS48xBl0tH" identifies a music track.
//
// Every URI formats back, via String, to a string that reparses to an equal
// value. Local items are the one exception: their free-text fields are
// normalized to the canonical percent/plus encoding during the round trip.
type URI interface {
	// String renders the URI in its canonical textual form.
	String() string
	// IsPlayable reports whether the URI can be played as an individual
	// unit.
	IsPlayable() bool

	isURI()
}

// ItemURI is a plain catalog item reference.
type ItemURI struct {
	Item Item
}

func (u ItemURI) isURI() {}

func (u ItemURI) IsPlayable() bool {
	return u.Item.IsPlayable()
}

func (u ItemURI) String() string {
	return u.Item.String()
}

// UserURI is a catalog item reference scoped to a user.
type UserURI struct {
	Username string
	Item     Item
}

func (u UserURI) isURI() {}

func (u UserURI) IsPlayable() bool {
	return u.Item.IsPlayable()
}

func (u UserURI) String() string {
	return "spotify:user:" + u.Username + ":" + string(u.Item.Type) + ":" + u.Item.ID.Base62()
}

// StationURI asks for recommendations seeded by an item. It does not
// identify the item itself, so it is never directly playable.
type StationURI struct {
	Item Item
}

func (u StationURI) isURI() {}

func (u StationURI) IsPlayable() bool {
	return false
}

func (u StationURI) String() string {
	return "spotify:station:" + string(u.Item.Type) + ":" + u.Item.ID.Base62()
}

// MetaURI is a metadata reference, such as a pagination page.
type MetaURI struct {
	Meta MetaItem
}

func (u MetaURI) isURI() {}

func (u MetaURI) IsPlayable() bool {
	return false
}

func (u MetaURI) String() string {
	return u.Meta.String()
}

// LocalURI references a track on the user's own filesystem.
type LocalURI struct {
	Local LocalItem
}

func (u LocalURI) isURI() {}

func (u LocalURI) IsPlayable() bool {
	return false
}

func (u LocalURI) String() string {
	return u.Local.String()
}

// UnknownURI preserves a spotify URI this package does not understand. Word
// is the segment after the scheme, verbatim. Rest is the colon-joined tail,
// verbatim; HasRest distinguishes a present-but-empty remainder
// ("spotify:x:") from no remainder at all ("spotify:x").
type UnknownURI struct {
	Word    string
	Rest    string
	HasRest bool
}

func (u UnknownURI) isURI() {}

func (u UnknownURI) IsPlayable() bool {
	return false
}

func (u UnknownURI) String() string {
	if u.HasRest {
		return "spotify:" + u.Word + ":" + u.Rest
	}
	return "spotify:" + u.Word
}

// TrackURI builds the plain catalog reference of a track.
func TrackURI(id ID) URI {
	return ItemURI{Item: Item{Type: ItemTypeTrack, ID: id}}
}

// AlbumURI builds the plain catalog reference of an album.
func AlbumURI(id ID) URI {
	return ItemURI{Item: Item{Type: ItemTypeAlbum, ID: id}}
}

// ArtistURI builds the plain catalog reference of an artist.
func ArtistURI(id ID) URI {
	return ItemURI{Item: Item{Type: ItemTypeArtist, ID: id}}
}

// EpisodeURI builds the plain catalog reference of an episode.
func EpisodeURI(id ID) URI {
	return ItemURI{Item: Item{Type: ItemTypeEpisode, ID: id}}
}

// PlaylistURI builds the plain catalog reference of a playlist.
func PlaylistURI(id ID) URI {
	return ItemURI{Item: Item{Type: ItemTypePlaylist, ID: id}}
}

// ShowURI builds the plain catalog reference of a show.
func ShowURI(id ID) URI {
	return ItemURI{Item: Item{Type: ItemTypeShow, ID: id}}
}

// ItemOf extracts the catalog item a URI identifies. Station URIs carry an
// item too, but they identify a recommendation function of that item rather
// than the item itself, so they are excluded along with meta, local and
// unknown URIs.
func ItemOf(u URI) (Item, bool) {
	switch v := u.(type) {
	case ItemURI:
		return v.Item, true
	case UserURI:
		return v.Item, true
	default:
		return Item{}, false
	}
}

// Parse splits src on ':' and classifies it. Hard failures return an error
// carrying the complete input: a non-spotify scheme, a missing required
// segment, a malformed identifier after a recognized item type word, a
// malformed page number, or malformed local track fields. Inputs that are
// syntactically spotify URIs but not understood do not fail; they degrade
// to an UnknownURI preserving the unconsumed tail verbatim.
func Parse(src string) (URI, error) {
	p := &segments{src: src, parts: strings.Split(src, ":")}

	scheme, err := p.next()
	if nil != err {
		return nil, err
	}
	if scheme != "spotify" {
		return nil, &InvalidSchemeError{Value: src}
	}

	word, err := p.next()
	if nil != err {
		return nil, err
	}
	switch word {
	case "user":
		user, err := p.next()
		if nil != err {
			return nil, err
		}
		return p.parseTypedItem(
			func(item Item) URI {
				return UserURI{Username: user, Item: item}
			},
			func(typ, rest string, hasRest bool) URI {
				tail := typ
				if hasRest {
					tail += ":" + rest
				}
				return UnknownURI{Word: "user", Rest: user + ":" + tail, HasRest: true}
			},
		)
	case "station":
		return p.parseTypedItem(
			func(item Item) URI {
				return StationURI{Item: item}
			},
			func(typ, rest string, hasRest bool) URI {
				tail := typ
				if hasRest {
					tail += ":" + rest
				}
				return UnknownURI{Word: "station", Rest: tail, HasRest: true}
			},
		)
	case "meta":
		return p.parseMeta()
	case "local":
		return p.parseLocal()
	default:
		// Item type words and arbitrary unknown words land here alike; the
		// sub-grammar decides which.
		return p.parseTypedItemWord(word,
			func(item Item) URI {
				return ItemURI{Item: item}
			},
			func(typ, rest string, hasRest bool) URI {
				return UnknownURI{Word: typ, Rest: rest, HasRest: hasRest}
			},
		)
	}
}

// segments is a cursor over the colon-separated parts of src.
type segments struct {
	src   string
	parts []string
	i     int
}

func (p *segments) next() (string, error) {
	if p.i >= len(p.parts) {
		return "", &InvalidFormatError{Reason: "missing part", Value: p.src}
	}
	s := p.parts[p.i]
	p.i++
	return s, nil
}

// rest consumes all remaining segments and rejoins them verbatim with ':'.
// ok is false when no segments remained at all, as opposed to a single
// final empty segment, which yields ("", true).
func (p *segments) rest() (string, bool) {
	if p.i >= len(p.parts) {
		return "", false
	}
	s := strings.Join(p.parts[p.i:], ":")
	p.i = len(p.parts)
	return s, true
}

// parseTypedItem reads the item type word off the cursor and resolves the
// shared {type}:{id} sub-grammar with it.
func (p *segments) parseTypedItem(onItem func(Item) URI, onUnknown func(typ, rest string, hasRest bool) URI) (URI, error) {
	typ, err := p.next()
	if nil != err {
		return nil, err
	}
	return p.parseTypedItemWord(typ, onItem, onUnknown)
}

// parseTypedItemWord resolves the shared {type}:{base62 id} sub-grammar for
// an already-consumed type word. The two injections decide how a clean item
// and a degraded remainder map back into the caller's variant. The grammar
// is asymmetric on purpose: an unrecognized type word degrades with the raw
// tail preserved, while a recognized type word followed by a missing or
// malformed identifier is a hard error. A recognized type and valid
// identifier followed by extra segments also degrades, with the raw
// identifier string in the remainder.
func (p *segments) parseTypedItemWord(typ string, onItem func(Item) URI, onUnknown func(typ, rest string, hasRest bool) URI) (URI, error) {
	itemType, ok := ParseItemType(typ)
	if !ok {
		rest, hasRest := p.rest()
		return onUnknown(typ, rest, hasRest), nil
	}
	idStr, err := p.next()
	if nil != err {
		return nil, err
	}
	id, err := IDFromBase62(idStr)
	if nil != err {
		return nil, err
	}
	if rest, hasRest := p.rest(); hasRest {
		return onUnknown(typ, idStr+":"+rest, true), nil
	}
	return onItem(Item{Type: itemType, ID: id}), nil
}

func (p *segments) parseMeta() (URI, error) {
	kind, err := p.next()
	if nil != err {
		return nil, err
	}
	if kind != "page" {
		rest, hasRest := p.rest()
		tail := kind
		if hasRest {
			tail += ":" + rest
		}
		return UnknownURI{Word: "meta", Rest: tail, HasRest: true}, nil
	}
	pageStr, err := p.next()
	if nil != err {
		return nil, err
	}
	// A malformed page number after the recognized "page" word fails the
	// whole parse; only unrecognized meta kinds degrade.
	page, err := strconv.ParseUint(pageStr, 10, 64)
	if nil != err {
		return nil, &InvalidFormatError{Reason: err.Error(), Value: p.src}
	}
	if rest, hasRest := p.rest(); hasRest {
		return UnknownURI{
			Word:    "meta",
			Rest:    "page:" + strconv.FormatUint(page, 10) + ":" + rest,
			HasRest: true,
		}, nil
	}
	return MetaURI{Meta: MetaItem{Page: page}}, nil
}

func (p *segments) parseLocal() (URI, error) {
	artist, err := p.next()
	if nil != err {
		return nil, err
	}
	albumTitle, err := p.next()
	if nil != err {
		return nil, err
	}
	trackTitle, err := p.next()
	if nil != err {
		return nil, err
	}
	durationStr, err := p.next()
	if nil != err {
		return nil, err
	}
	if rest, hasRest := p.rest(); hasRest {
		// Extra segments mean the whole tail is opaque, so the four fields
		// stay raw and undecoded in the preserved remainder.
		return UnknownURI{
			Word:    "local",
			Rest:    strings.Join([]string{artist, albumTitle, trackTitle, durationStr, rest}, ":"),
			HasRest: true,
		}, nil
	}
	artistDec, err := decodeLocalText(p.src, artist)
	if nil != err {
		return nil, err
	}
	albumTitleDec, err := decodeLocalText(p.src, albumTitle)
	if nil != err {
		return nil, err
	}
	trackTitleDec, err := decodeLocalText(p.src, trackTitle)
	if nil != err {
		return nil, err
	}
	duration, err := strconv.ParseUint(durationStr, 10, 32)
	if nil != err {
		return nil, &InvalidFormatError{Reason: err.Error(), Value: p.src}
	}
	return LocalURI{Local: LocalItem{
		Artist:     artistDec,
		AlbumTitle: albumTitleDec,
		TrackTitle: trackTitleDec,
		DurationS:  uint32(duration),
	}}, nil
}
