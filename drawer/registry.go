// seehuhn.de/go/label - compose and verify printable label images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package drawer

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
)

// Registry maps drawer type tags to constructors.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	types map[string]NewFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]NewFunc),
	}
}

// Register adds a new drawer type.  Tags are case-insensitive.
// Register panics if the tag is already present.
func (r *Registry) Register(tag string, fn NewFunc) {
	tag = config.Fold(tag)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.types == nil {
		r.types = make(map[string]NewFunc)
	}
	if _, alreadyPresent := r.types[tag]; alreadyPresent {
		panic(fmt.Sprintf("conflicting constructors for drawer type %q", tag))
	}
	r.types[tag] = fn
}

// Types returns the registered tags in sorted order.
func (r *Registry) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Sorted(maps.Keys(r.types))
}

// Create constructs a drawer of the given type.
func (r *Registry) Create(tag string, args config.Object) (Drawer, error) {
	r.mu.Lock()
	fn, ok := r.types[config.Fold(tag)]
	r.mu.Unlock()

	if !ok {
		return nil, &label.ConfigError{
			Key: KeyDrawerType,
			Err: fmt.Errorf("%q: %w", tag, label.ErrUnknownDrawer),
		}
	}
	if args == nil {
		args = config.Object{}
	}

	d, err := fn(args)
	if err != nil {
		return nil, fmt.Errorf("%s drawer: %w", tag, err)
	}
	return d, nil
}

// CreateFrom constructs a drawer from a layout document node.  The node
// must have a "drawer-type" key and may have an "args" object.
func (r *Registry) CreateFrom(obj config.Object) (Drawer, error) {
	err := obj.Require("drawer", KeyDrawerType)
	if err != nil {
		return nil, err
	}
	tag, err := obj.String(KeyDrawerType)
	if err != nil {
		return nil, err
	}

	var args config.Object
	if obj.Has(KeyArgs) {
		args, err = obj.Object(KeyArgs)
		if err != nil {
			return nil, err
		}
	}

	return r.Create(tag, args)
}
