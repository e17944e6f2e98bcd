// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// rootHandler exports org.mpris.MediaPlayer2 (the application-lifecycle
// half of MPRIS). It is a distinct named type over *Backend purely so the
// three interfaces exported at the same object path don't collide on
// method sets during conn.Export.
type rootHandler Backend

func (r *rootHandler) Raise() *dbus.Error {
	if r.cb.OnRaise != nil {
		r.cb.OnRaise()
	}
	return nil
}

func (r *rootHandler) Quit() *dbus.Error {
	return nil
}

// playerHandler exports org.mpris.MediaPlayer2.Player.
type playerHandler Backend

func (p *playerHandler) Play() *dbus.Error {
	if p.cb.OnPlay != nil {
		p.cb.OnPlay()
	}
	return nil
}

func (p *playerHandler) Pause() *dbus.Error {
	if p.cb.OnPause != nil {
		p.cb.OnPause()
	}
	return nil
}

func (p *playerHandler) PlayPause() *dbus.Error {
	if p.cb.OnPlayPause != nil {
		p.cb.OnPlayPause()
	}
	return nil
}

func (p *playerHandler) Stop() *dbus.Error {
	if p.cb.OnStop != nil {
		p.cb.OnStop()
	}
	return nil
}

func (p *playerHandler) Next() *dbus.Error {
	if p.cb.OnNext != nil {
		p.cb.OnNext()
	}
	return nil
}

func (p *playerHandler) Previous() *dbus.Error {
	if p.cb.OnPrevious != nil {
		p.cb.OnPrevious()
	}
	return nil
}

func (p *playerHandler) Seek(offsetUs int64) *dbus.Error {
	if p.cb.OnSeek != nil {
		p.cb.OnSeek(offsetUs)
	}
	return nil
}

func (p *playerHandler) SetPosition(trackID dbus.ObjectPath, positionUs int64) *dbus.Error {
	if p.cb.OnSetPosition != nil {
		p.cb.OnSetPosition(positionUs)
	}
	return nil
}

// propHandler exports org.freedesktop.DBus.Properties for both the root
// and player interfaces at /org/mpris/MediaPlayer2, grounded on the
// logind-stub propHandler shape.
type propHandler Backend

func (h *propHandler) Get(iface, prop string) (dbus.Variant, *dbus.Error) {
	h.mu.Lock()
	v, ok := (*Backend)(h).propertyLocked(iface, prop)
	h.mu.Unlock()
	if !ok {
		return dbus.Variant{}, dbus.MakeFailedError(fmt.Errorf("mpris: unknown property %s.%s", iface, prop))
	}
	return v, nil
}

func (h *propHandler) GetAll(iface string) (map[string]dbus.Variant, *dbus.Error) {
	names, ok := propertyNames[iface]
	if !ok {
		return nil, dbus.MakeFailedError(fmt.Errorf("mpris: unknown interface %s", iface))
	}
	result := make(map[string]dbus.Variant, len(names))
	h.mu.Lock()
	for _, name := range names {
		if v, ok := (*Backend)(h).propertyLocked(iface, name); ok {
			result[name] = v
		}
	}
	h.mu.Unlock()
	return result, nil
}

func (h *propHandler) Set(iface, prop string, value dbus.Variant) *dbus.Error {
	if iface != playerIface || prop != "Rate" {
		return dbus.MakeFailedError(fmt.Errorf("mpris: property %s.%s is read-only", iface, prop))
	}
	rate, ok := value.Value().(float64)
	if !ok {
		return dbus.MakeFailedError(fmt.Errorf("mpris: Rate must be a double"))
	}
	if rate < minRate {
		rate = minRate
	}
	if rate > maxRate {
		rate = maxRate
	}
	b := (*Backend)(h)
	if b.cb.OnSetRate != nil {
		b.cb.OnSetRate(rate)
	}
	return nil
}

var propertyNames = map[string][]string{
	rootIface: {
		"Identity", "CanQuit", "CanRaise", "CanSetFullscreen", "Fullscreen",
		"HasTrackList", "SupportedUriSchemes", "SupportedMimeTypes",
	},
	playerIface: {
		"PlaybackStatus", "Rate", "MinimumRate", "MaximumRate", "Metadata",
		"Volume", "Position", "CanGoNext", "CanGoPrevious", "CanPlay",
		"CanPause", "CanSeek", "CanControl",
	},
}

// propertyLocked returns the current value of a single property. The
// caller must hold b.mu.
func (b *Backend) propertyLocked(iface, name string) (dbus.Variant, bool) {
	switch iface {
	case rootIface:
		switch name {
		case "Identity":
			return dbus.MakeVariant("Jellyfin Desktop"), true
		case "CanQuit":
			return dbus.MakeVariant(false), true
		case "CanRaise":
			return dbus.MakeVariant(true), true
		case "CanSetFullscreen":
			return dbus.MakeVariant(true), true
		case "Fullscreen":
			return dbus.MakeVariant(false), true
		case "HasTrackList":
			return dbus.MakeVariant(false), true
		case "SupportedUriSchemes":
			return dbus.MakeVariant([]string{}), true
		case "SupportedMimeTypes":
			return dbus.MakeVariant([]string{}), true
		}
	case playerIface:
		switch name {
		case "PlaybackStatus":
			return dbus.MakeVariant(b.state.String()), true
		case "Rate":
			return dbus.MakeVariant(b.rate), true
		case "MinimumRate":
			return dbus.MakeVariant(minRate), true
		case "MaximumRate":
			return dbus.MakeVariant(maxRate), true
		case "Metadata":
			return dbus.MakeVariant(b.metadataMapLocked()), true
		case "Volume":
			return dbus.MakeVariant(b.volume), true
		case "Position":
			return dbus.MakeVariant(b.positionUs), true
		case "CanGoNext":
			return dbus.MakeVariant(b.canGoNext), true
		case "CanGoPrevious":
			return dbus.MakeVariant(b.canGoPrevious), true
		case "CanPlay":
			return dbus.MakeVariant(b.state != stopped), true
		case "CanPause":
			return dbus.MakeVariant(b.state == playing), true
		case "CanSeek":
			return dbus.MakeVariant(b.state != stopped && b.meta.DurationUs > 0), true
		case "CanControl":
			return dbus.MakeVariant(b.state != stopped), true
		}
	}
	return dbus.Variant{}, false
}

// metadataMapLocked builds the a{sv} Metadata dict. The caller must hold
// b.mu. mpris:trackid is a dbus.ObjectPath by spec, even though this
// player only ever has one track loaded at a time.
func (b *Backend) metadataMapLocked() map[string]dbus.Variant {
	m := map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath("/org/jellyfin/track/1")),
	}
	if b.meta.DurationUs > 0 {
		m["mpris:length"] = dbus.MakeVariant(b.meta.DurationUs)
	}
	if b.meta.Title != "" {
		m["xesam:title"] = dbus.MakeVariant(b.meta.Title)
	}
	if b.meta.Artist != "" {
		m["xesam:artist"] = dbus.MakeVariant([]string{b.meta.Artist})
	}
	if b.meta.Album != "" {
		m["xesam:album"] = dbus.MakeVariant(b.meta.Album)
	}
	if b.meta.TrackNumber > 0 {
		m["xesam:trackNumber"] = dbus.MakeVariant(int32(b.meta.TrackNumber))
	}
	if b.meta.ArtDataURI != "" {
		m["mpris:artUrl"] = dbus.MakeVariant(b.meta.ArtDataURI)
	} else if b.meta.ArtURL != "" {
		m["mpris:artUrl"] = dbus.MakeVariant(b.meta.ArtURL)
	}
	return m
}

func introspectNode() *introspect.Node {
	return &introspect.Node{
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: rootIface,
				Methods: []introspect.Method{
					{Name: "Raise"},
					{Name: "Quit"},
				},
				Properties: []introspect.Property{
					{Name: "Identity", Type: "s", Access: "read"},
					{Name: "CanQuit", Type: "b", Access: "read"},
					{Name: "CanRaise", Type: "b", Access: "read"},
					{Name: "CanSetFullscreen", Type: "b", Access: "read"},
					{Name: "Fullscreen", Type: "b", Access: "read"},
					{Name: "HasTrackList", Type: "b", Access: "read"},
					{Name: "SupportedUriSchemes", Type: "as", Access: "read"},
					{Name: "SupportedMimeTypes", Type: "as", Access: "read"},
				},
			},
			{
				Name: playerIface,
				Methods: []introspect.Method{
					{Name: "Play"},
					{Name: "Pause"},
					{Name: "PlayPause"},
					{Name: "Stop"},
					{Name: "Next"},
					{Name: "Previous"},
					{Name: "Seek", Args: []introspect.Arg{{Name: "Offset", Type: "x", Direction: "in"}}},
					{Name: "SetPosition", Args: []introspect.Arg{
						{Name: "TrackId", Type: "o", Direction: "in"},
						{Name: "Position", Type: "x", Direction: "in"},
					}},
				},
				Signals: []introspect.Signal{
					{Name: "Seeked", Args: []introspect.Arg{{Name: "Position", Type: "x"}}},
				},
				Properties: []introspect.Property{
					{Name: "PlaybackStatus", Type: "s", Access: "read"},
					{Name: "Rate", Type: "d", Access: "readwrite"},
					{Name: "MinimumRate", Type: "d", Access: "read"},
					{Name: "MaximumRate", Type: "d", Access: "read"},
					{Name: "Metadata", Type: "a{sv}", Access: "read"},
					{Name: "Volume", Type: "d", Access: "read"},
					{Name: "Position", Type: "x", Access: "read"},
					{Name: "CanGoNext", Type: "b", Access: "read"},
					{Name: "CanGoPrevious", Type: "b", Access: "read"},
					{Name: "CanPlay", Type: "b", Access: "read"},
					{Name: "CanPause", Type: "b", Access: "read"},
					{Name: "CanSeek", Type: "b", Access: "read"},
					{Name: "CanControl", Type: "b", Access: "read"},
				},
			},
		},
	}
}
