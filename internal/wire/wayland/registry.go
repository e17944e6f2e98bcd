// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package wayland

import "sync"

// wl_registry request opcodes.
const (
	registryBind Opcode = 0
)

// wl_registry event opcodes.
const (
	registryEventGlobal       Opcode = 0
	registryEventGlobalRemove Opcode = 1
)

// Global describes one name advertised by the compositor.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Registry enumerates the compositor's globals and binds the ones this
// client needs (wl_compositor, wl_subcompositor, and, where available, a
// color-management manager).
type Registry struct {
	display *Display
	id      ObjectID

	mu      sync.Mutex
	globals map[string]Global
}

func newRegistry(display *Display, id ObjectID) *Registry {
	return &Registry{display: display, id: id, globals: make(map[string]Global)}
}

func (r *Registry) dispatch(msg *Message) error {
	switch msg.Opcode {
	case registryEventGlobal:
		dec := NewDecoder(msg.Args)
		name, err := dec.Uint32()
		if err != nil {
			return err
		}
		iface, err := dec.String()
		if err != nil {
			return err
		}
		version, err := dec.Uint32()
		if err != nil {
			return err
		}
		r.mu.Lock()
		r.globals[iface] = Global{Name: name, Interface: iface, Version: version}
		r.mu.Unlock()
	case registryEventGlobalRemove:
		dec := NewDecoder(msg.Args)
		name, err := dec.Uint32()
		if err != nil {
			return err
		}
		r.mu.Lock()
		for iface, g := range r.globals {
			if g.Name == name {
				delete(r.globals, iface)
			}
		}
		r.mu.Unlock()
	}
	return nil
}

// Lookup returns the advertised global for an interface name, after the
// caller has round-tripped via Display.Sync to ensure globals have
// arrived.
func (r *Registry) Lookup(iface string) (Global, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.globals[iface]
	return g, ok
}

// bind issues wl_registry.bind for a global, returning the client id
// allocated for the new object.
func (r *Registry) bind(iface string, version uint32) (ObjectID, error) {
	g, ok := r.Lookup(iface)
	if !ok {
		return 0, wireError("wayland: global not advertised: " + iface)
	}
	if version > g.Version {
		version = g.Version
	}
	id := r.display.AllocID()
	b := NewMessageBuilder()
	b.PutUint32(g.Name)
	b.PutString(iface)
	b.PutUint32(version)
	b.PutNewID(id)
	if err := r.display.SendMessage(b.BuildMessage(r.id, registryBind)); err != nil {
		return 0, err
	}
	return id, nil
}

// BindCompositor binds wl_compositor.
func (r *Registry) BindCompositor(version uint32) (*Compositor, error) {
	id, err := r.bind("wl_compositor", version)
	if err != nil {
		return nil, err
	}
	return &Compositor{display: r.display, id: id}, nil
}

// BindSubcompositor binds wl_subcompositor.
func (r *Registry) BindSubcompositor(version uint32) (*Subcompositor, error) {
	id, err := r.bind("wl_subcompositor", version)
	if err != nil {
		return nil, err
	}
	return &Subcompositor{display: r.display, id: id}, nil
}

// BindColorManager binds the color-management global, if advertised.
func (r *Registry) BindColorManager(iface string, version uint32) (*ColorManager, error) {
	id, err := r.bind(iface, version)
	if err != nil {
		return nil, err
	}
	return &ColorManager{display: r.display, id: id}, nil
}
