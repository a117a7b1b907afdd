// Package metadata holds thin views over the externally defined catalog
// metadata records, just wide enough to extract identifiers from them. The
// records arrive from the catalog service in another layer of the hosting
// application; this package only converts their identifier fields into
// spotify IDs, file IDs and URIs.
package metadata

import (
	"github.com/xeptore/spotid/spotify"
)

// TrackRef is a playback queue reference to a track. Remote peers fill
// either the raw identifier or the textual URI, sometimes both.
type TrackRef struct {
	GID []byte `json:"gid"`
	URI string `json:"uri"`
}

// SpotifyURI resolves the reference, preferring the raw identifier and
// falling back to the textual URI field when the identifier is absent or
// malformed.
func (t TrackRef) SpotifyURI() (spotify.URI, error) {
	if id, err := spotify.IDFromBytes(t.GID); nil == err {
		return spotify.TrackURI(id), nil
	}
	return spotify.Parse(t.URI)
}

type Album struct {
	GID  []byte `json:"gid"`
	Name string `json:"name"`
}

func (a Album) SpotifyURI() (spotify.URI, error) {
	id, err := spotify.IDFromBytes(a.GID)
	if nil != err {
		return nil, err
	}
	return spotify.AlbumURI(id), nil
}

type Artist struct {
	GID  []byte `json:"gid"`
	Name string `json:"name"`
}

func (a Artist) SpotifyURI() (spotify.URI, error) {
	id, err := spotify.IDFromBytes(a.GID)
	if nil != err {
		return nil, err
	}
	return spotify.ArtistURI(id), nil
}

// ArtistWithRole is an artist credit on a track, carrying the role (main,
// featured, remixer, ...) alongside the artist identifier.
type ArtistWithRole struct {
	ArtistGID []byte `json:"artist_gid"`
	Name      string `json:"artist_name"`
	Role      string `json:"role"`
}

func (a ArtistWithRole) SpotifyURI() (spotify.URI, error) {
	id, err := spotify.IDFromBytes(a.ArtistGID)
	if nil != err {
		return nil, err
	}
	return spotify.ArtistURI(id), nil
}

type Track struct {
	GID  []byte `json:"gid"`
	Name string `json:"name"`
}

func (t Track) SpotifyURI() (spotify.URI, error) {
	id, err := spotify.IDFromBytes(t.GID)
	if nil != err {
		return nil, err
	}
	return spotify.TrackURI(id), nil
}

type Episode struct {
	GID  []byte `json:"gid"`
	Name string `json:"name"`
}

func (e Episode) SpotifyURI() (spotify.URI, error) {
	id, err := spotify.IDFromBytes(e.GID)
	if nil != err {
		return nil, err
	}
	return spotify.EpisodeURI(id), nil
}

type Show struct {
	GID  []byte `json:"gid"`
	Name string `json:"name"`
}

func (s Show) SpotifyURI() (spotify.URI, error) {
	id, err := spotify.IDFromBytes(s.GID)
	if nil != err {
		return nil, err
	}
	return spotify.ShowURI(id), nil
}

// PlaylistItem is an entry of a playlist listing; items are referenced by
// URI only.
type PlaylistItem struct {
	URI string `json:"uri"`
}

func (p PlaylistItem) SpotifyURI() (spotify.URI, error) {
	return spotify.Parse(p.URI)
}

// PlaylistMetaItem annotates an item's metadata on a playlist. Revision
// identifies that annotation revision, not the item or the playlist.
type PlaylistMetaItem struct {
	Revision []byte `json:"revision"`
}

func (p PlaylistMetaItem) RevisionID() (spotify.ID, error) {
	return spotify.IDFromBytes(p.Revision)
}

// SelectedListContent is the resolved content of a playlist. Revision
// identifies the revision of the playlist, not the playlist itself.
type SelectedListContent struct {
	Revision []byte `json:"revision"`
}

func (s SelectedListContent) RevisionID() (spotify.ID, error) {
	return spotify.IDFromBytes(s.Revision)
}

// TranscodedPicture is a playlist annotation picture.
type TranscodedPicture struct {
	TargetName string `json:"target_name"`
	URI        string `json:"uri"`
}

// SpotifyURI parses the picture reference as a URI.
//
// TODO: check the meaning and format of this field in the wild; it might be
// a 20-byte FileID rather than a URI.
func (p TranscodedPicture) SpotifyURI() (spotify.URI, error) {
	return spotify.Parse(p.URI)
}

// Image is a cover or profile picture descriptor.
type Image struct {
	ID     []byte `json:"file_id"`
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
}

func (i Image) FileID() (spotify.FileID, error) {
	return spotify.FileIDFromBytes(i.ID)
}

// AudioFile is a downloadable encoding of a track.
type AudioFile struct {
	ID     []byte `json:"file_id"`
	Format string `json:"format"`
}

func (f AudioFile) FileID() (spotify.FileID, error) {
	return spotify.FileIDFromBytes(f.ID)
}

// VideoFile is a downloadable encoding of a video episode.
type VideoFile struct {
	ID []byte `json:"file_id"`
}

func (f VideoFile) FileID() (spotify.FileID, error) {
	return spotify.FileIDFromBytes(f.ID)
}
