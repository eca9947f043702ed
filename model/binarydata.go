package model

//
// BinaryDataInfo
//

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// BinaryDataInfo describes binary data attached to an entity. On the
// wire it is either a bare string carrying the key only, or a full
// object carrying the key, the download URL, and the metadata.
type BinaryDataInfo struct {
	// Key identifies the binary data within the owning entity.
	Key optional.Value[string]

	// URL is the download URL, when available.
	URL optional.Value[string]

	// ContentLength is the size of the binary data in bytes.
	ContentLength optional.Value[int64]

	// ContentType is the MIME type of the binary data.
	ContentType optional.Value[string]

	// LastModified is the last modification timestamp.
	LastModified optional.Value[time.Time]
}

// binaryDataInfoWire is the JSON object layout of [BinaryDataInfo].
type binaryDataInfoWire struct {
	Key      optional.Value[string] `json:"key"`
	URL      optional.Value[string] `json:"url"`
	Metadata struct {
		ContentLength optional.Value[int64]  `json:"contentLength"`
		ContentType   optional.Value[string] `json:"contentType"`
		LastModified  optional.Value[string] `json:"lastModified"`
	} `json:"metadata"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BinaryDataInfo) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var key string
		if err := json.Unmarshal(data, &key); err != nil {
			return err
		}
		*b = BinaryDataInfo{Key: optional.Some(key)}
		return nil
	}
	var wire binaryDataInfoWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	b.Key = wire.Key
	b.URL = wire.URL
	b.ContentLength = wire.Metadata.ContentLength
	b.ContentType = wire.Metadata.ContentType
	b.LastModified = ParseTime(wire.Metadata.LastModified)
	return nil
}
