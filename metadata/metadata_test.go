package metadata_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/spotid/metadata"
	"github.com/xeptore/spotid/spotify"
)

const (
	trackHex    = "b39fe8081e1f4c54be38e8d6f9f12bb9"
	trackURI    = "spotify:track:5sWHDYs0csV6RS48xBl0tH"
	trackBase62 = "5sWHDYs0csV6RS48xBl0tH"
)

func trackGID(t *testing.T) []byte {
	t.Helper()
	raw, err := hex.DecodeString(trackHex)
	require.NoError(t, err)
	return raw
}

func TestTrackRefPrefersGID(t *testing.T) {
	t.Parallel()
	ref := metadata.TrackRef{GID: trackGID(t), URI: "spotify:track:0000000000000000000000"}
	u, err := ref.SpotifyURI()
	require.NoError(t, err)
	assert.Equal(t, trackURI, u.String())
}

func TestTrackRefFallsBackToURI(t *testing.T) {
	t.Parallel()

	ref := metadata.TrackRef{URI: trackURI}
	u, err := ref.SpotifyURI()
	require.NoError(t, err)
	assert.Equal(t, trackURI, u.String())

	// Malformed gid falls back too.
	ref = metadata.TrackRef{GID: []byte{1, 2, 3}, URI: trackURI}
	u, err = ref.SpotifyURI()
	require.NoError(t, err)
	assert.Equal(t, trackURI, u.String())
}

func TestTrackRefEmpty(t *testing.T) {
	t.Parallel()
	_, err := metadata.TrackRef{}.SpotifyURI()
	require.Error(t, err)
}

func TestRecordURIs(t *testing.T) {
	t.Parallel()
	gid := trackGID(t)
	cases := []struct {
		name string
		want string
		conv func() (spotify.URI, error)
	}{
		{"album", "spotify:album:" + trackBase62, metadata.Album{GID: gid}.SpotifyURI},
		{"artist", "spotify:artist:" + trackBase62, metadata.Artist{GID: gid}.SpotifyURI},
		{"artist_with_role", "spotify:artist:" + trackBase62, metadata.ArtistWithRole{ArtistGID: gid, Role: "main"}.SpotifyURI},
		{"track", trackURI, metadata.Track{GID: gid}.SpotifyURI},
		{"episode", "spotify:episode:" + trackBase62, metadata.Episode{GID: gid}.SpotifyURI},
		{"show", "spotify:show:" + trackBase62, metadata.Show{GID: gid}.SpotifyURI},
		{"playlist_item", trackURI, metadata.PlaylistItem{URI: trackURI}.SpotifyURI},
		{"transcoded_picture", trackURI, metadata.TranscodedPicture{URI: trackURI}.SpotifyURI},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			u, err := c.conv()
			require.NoError(t, err)
			assert.Equal(t, c.want, u.String())
		})
	}
}

func TestRecordURIsBadGID(t *testing.T) {
	t.Parallel()
	bad := []byte{0xde, 0xad}
	for name, conv := range map[string]func() (spotify.URI, error){
		"album":   metadata.Album{GID: bad}.SpotifyURI,
		"artist":  metadata.Artist{GID: bad}.SpotifyURI,
		"track":   metadata.Track{GID: bad}.SpotifyURI,
		"episode": metadata.Episode{GID: bad}.SpotifyURI,
		"show":    metadata.Show{GID: bad}.SpotifyURI,
	} {
		conv := conv
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := conv()
			bytesErr := new(spotify.InvalidIDBytesError)
			require.ErrorAs(t, err, &bytesErr)
		})
	}
}

func TestRevisionIDs(t *testing.T) {
	t.Parallel()
	gid := trackGID(t)

	id, err := metadata.PlaylistMetaItem{Revision: gid}.RevisionID()
	require.NoError(t, err)
	assert.Equal(t, trackHex, id.Hex())

	id, err = metadata.SelectedListContent{Revision: gid}.RevisionID()
	require.NoError(t, err)
	assert.Equal(t, trackHex, id.Hex())
}

func TestFileIDs(t *testing.T) {
	t.Parallel()
	raw, err := hex.DecodeString("c9c22a8a3c3c8f4e4b5d6e7f8091a2b3c4d5e6f7")
	require.NoError(t, err)

	img, err := metadata.Image{ID: raw, Width: 640, Height: 640}.FileID()
	require.NoError(t, err)
	assert.Equal(t, "c9c22a8a3c3c8f4e4b5d6e7f8091a2b3c4d5e6f7", img.Hex())

	audio, err := metadata.AudioFile{ID: raw, Format: "OGG_VORBIS_320"}.FileID()
	require.NoError(t, err)
	assert.Equal(t, img, audio)

	video, err := metadata.VideoFile{ID: raw}.FileID()
	require.NoError(t, err)
	assert.Equal(t, img, video)

	_, err = metadata.Image{ID: raw[:19]}.FileID()
	bytesErr := new(spotify.InvalidIDBytesError)
	require.ErrorAs(t, err, &bytesErr)
}

func TestTrackRefFromJSON(t *testing.T) {
	t.Parallel()

	ref, err := metadata.TrackRefFromJSON([]byte(`{"gid":"` + trackHex + `","uri":""}`))
	require.NoError(t, err)
	u, err := ref.SpotifyURI()
	require.NoError(t, err)
	assert.Equal(t, trackURI, u.String())

	ref, err = metadata.TrackRefFromJSON([]byte(`{"uri":"` + trackURI + `"}`))
	require.NoError(t, err)
	assert.Nil(t, ref.GID)
	assert.Equal(t, trackURI, ref.URI)

	_, err = metadata.TrackRefFromJSON([]byte(`{"gid":"xyz"}`))
	require.Error(t, err)

	_, err = metadata.TrackRefFromJSON([]byte(`{`))
	require.Error(t, err)
}

func TestPlaylistItemsFromJSON(t *testing.T) {
	t.Parallel()

	items, err := metadata.PlaylistItemsFromJSON([]byte(`{"items":[{"uri":"` + trackURI + `"},{"uri":"spotify:album:4GNcXTGWmnZ3ySrqvol3o4"}]}`))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, trackURI, items[0].URI)
	assert.Equal(t, "spotify:album:4GNcXTGWmnZ3ySrqvol3o4", items[1].URI)

	_, err = metadata.PlaylistItemsFromJSON([]byte(`{"items":{}}`))
	require.Error(t, err)

	_, err = metadata.PlaylistItemsFromJSON([]byte(`not json`))
	require.Error(t, err)
}
