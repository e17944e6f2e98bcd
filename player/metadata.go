// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package player

import "encoding/json"

// MediaType classifies MediaMetadata for media-session reporting.
type MediaType int

const (
	MediaNone MediaType = iota
	MediaAudio
	MediaVideo
)

// MediaMetadata is the spec section 3 media-metadata value: `{ title,
// artist, album, track_number, duration_us, art_url, art_data_uri,
// media_type }`.
type MediaMetadata struct {
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	DurationUs  int64
	ArtURL      string
	ArtDataURI  string
	MediaType   MediaType

	// ReplayGainDB is the normalisation gain in dB, applied to the engine's
	// audio filter chain at load time (spec section 4.E: "applies
	// normalisation gain (ReplayGain in dB) if present"). Zero means no
	// filter is applied.
	ReplayGainDB float64
}

// itemMetadata mirrors the subset of a Jellyfin item the web UI forwards
// as metadata_json on a "load" command.
type itemMetadata struct {
	Name          string  `json:"Name"`
	Artists       []string `json:"Artists"`
	Album         string  `json:"Album"`
	AlbumArtist   string  `json:"AlbumArtist"`
	IndexNumber   int     `json:"IndexNumber"`
	RunTimeTicks  int64   `json:"RunTimeTicks"`
	ImageURL      string  `json:"ImageUrl"`
	ImageDataURI  string  `json:"ImageDataUri"`
	IsVideo       bool    `json:"IsVideo"`
	ReplayGainDB  float64 `json:"NormalizationGain"`
}

// ParseMediaMetadata decodes a "load" command's metadata_json into a
// MediaMetadata, per testable property: "absent fields default to empty /
// None." A .NET RunTimeTicks value (100ns units) is converted to
// microseconds by dividing by 10.
func ParseMediaMetadata(raw string) MediaMetadata {
	if raw == "" {
		return MediaMetadata{MediaType: MediaNone}
	}
	var item itemMetadata
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return MediaMetadata{MediaType: MediaNone}
	}

	artist := item.AlbumArtist
	if artist == "" && len(item.Artists) > 0 {
		artist = item.Artists[0]
	}

	mediaType := MediaNone
	switch {
	case item.IsVideo:
		mediaType = MediaVideo
	case item.Name != "":
		mediaType = MediaAudio
	}

	return MediaMetadata{
		Title:        item.Name,
		Artist:       artist,
		Album:        item.Album,
		TrackNumber:  item.IndexNumber,
		DurationUs:   item.RunTimeTicks / 10,
		ArtURL:       item.ImageURL,
		ArtDataURI:   item.ImageDataURI,
		MediaType:    mediaType,
		ReplayGainDB: item.ReplayGainDB,
	}
}
