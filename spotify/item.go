package spotify

import (
	"strconv"
)

// ItemType is the kind of a basic catalog item. The set of kinds is closed
// and each kind has exactly one canonical lowercase word.
type ItemType string

const (
	ItemTypeAlbum    ItemType = "album"
	ItemTypeArtist   ItemType = "artist"
	ItemTypeEpisode  ItemType = "episode"
	ItemTypePlaylist ItemType = "playlist"
	ItemTypeShow     ItemType = "show"
	ItemTypeTrack    ItemType = "track"
)

// ParseItemType matches word against the six canonical item type words,
// case sensitively. An unrecognized word is not an error: ok is false and
// the caller keeps the original word to fold into an UnknownURI.
func ParseItemType(word string) (ItemType, bool) {
	switch t := ItemType(word); t {
	case ItemTypeAlbum, ItemTypeArtist, ItemTypeEpisode, ItemTypePlaylist, ItemTypeShow, ItemTypeTrack:
		return t, true
	default:
		return "", false
	}
}

func (t ItemType) String() string {
	return string(t)
}

// Item pairs an item type with the identifier of an item of that type.
type Item struct {
	Type ItemType
	ID   ID
}

// IsPlayable reports whether the item can be played as an individual unit.
// Only episodes and tracks can; albums, artists, playlists and shows
// identify collections or contexts, not renderable streams.
func (i Item) IsPlayable() bool {
	switch i.Type {
	case ItemTypeEpisode, ItemTypeTrack:
		return true
	default:
		return false
	}
}

func (i Item) String() string {
	return "spotify:" + string(i.Type) + ":" + i.ID.Base62()
}

// LocalItem is a music track sourced from the user's own filesystem rather
// than the catalog. It has basic metadata and no catalog identifier.
type LocalItem struct {
	Artist     string
	AlbumTitle string
	TrackTitle string
	DurationS  uint32
}

func (l LocalItem) String() string {
	return "spotify:local:" +
		encodeLocalText(l.Artist) + ":" +
		encodeLocalText(l.AlbumTitle) + ":" +
		encodeLocalText(l.TrackTitle) + ":" +
		strconv.FormatUint(uint64(l.DurationS), 10)
}

// MetaItem is a metadata reference. Pagination page references are the only
// known kind.
type MetaItem struct {
	Page uint64
}

func (m MetaItem) String() string {
	return "spotify:meta:page:" + strconv.FormatUint(m.Page, 10)
}
