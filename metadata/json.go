package metadata

import (
	"encoding/hex"
	"fmt"

	"github.com/tidwall/gjson"
)

// TrackRefFromJSON decodes a track reference from a catalog service JSON
// payload. The gid field is hex-encoded on the wire.
func TrackRefFromJSON(b []byte) (TrackRef, error) {
	if !gjson.ValidBytes(b) {
		return TrackRef{}, fmt.Errorf("metadata: malformed track reference payload")
	}
	var out TrackRef
	if gid := gjson.GetBytes(b, "gid"); gid.Exists() {
		raw, err := hex.DecodeString(gid.String())
		if nil != err {
			return TrackRef{}, fmt.Errorf("metadata: malformed track reference gid: %v", err)
		}
		out.GID = raw
	}
	out.URI = gjson.GetBytes(b, "uri").String()
	return out, nil
}

// PlaylistItemsFromJSON decodes the item URIs of a playlist listing payload,
// read from its items array.
func PlaylistItemsFromJSON(b []byte) ([]PlaylistItem, error) {
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("metadata: malformed playlist payload")
	}
	items := gjson.GetBytes(b, "items")
	if !items.IsArray() {
		return nil, fmt.Errorf("metadata: playlist payload has no items array")
	}
	arr := items.Array()
	out := make([]PlaylistItem, 0, len(arr))
	for _, item := range arr {
		out = append(out, PlaylistItem{URI: item.Get("uri").String()})
	}
	return out, nil
}
