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

package page

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
)

// ErrLayoutPosition is wrapped by errors for negative layout positions.
var ErrLayoutPosition = errors.New("layout position must not be negative")

// LoadLayout reads a layout from a layout document node.
//
// The node is an object or an array of objects.  Each object has the keys
// "page-drawer-type" ("page-drawer" or "grid-drawer") and "top-left",
// and the keys required by [Load] or [LoadGrid].  The sub-pages are placed
// at their top-left positions on a common page, which is just large
// enough to hold all of them.
func LoadLayout(reg *drawer.Registry, node any) (*Page, error) {
	layout := &Page{}
	for i, item := range config.AsList(node) {
		obj, ok := config.AsObject(item)
		if !ok {
			return nil, &label.ConfigError{
				Key: fmt.Sprintf("layout[%d]", i),
				Err: fmt.Errorf("expected object, got %T", item),
			}
		}
		err := layout.addEntry(reg, obj)
		if err != nil {
			return nil, fmt.Errorf("layout entry %d: %w", i, err)
		}
	}

	// The layout only grows, so all elements fit on the final page.
	for _, e := range layout.elements {
		e.pageSize = layout.size
	}
	return layout, nil
}

func (p *Page) addEntry(reg *drawer.Registry, obj config.Object) error {
	err := obj.Require("layout", KeyPageType, KeyTopLeft)
	if err != nil {
		return err
	}
	tag, err := obj.String(KeyPageType)
	if err != nil {
		return err
	}
	tp, err := ParseType(tag)
	if err != nil {
		return err
	}
	topLeft, err := obj.Point(KeyTopLeft)
	if err != nil {
		return err
	}
	if topLeft.X < 0 || topLeft.Y < 0 {
		return &label.ValueError{
			Field: KeyTopLeft,
			Err:   fmt.Errorf("%w, got %v", ErrLayoutPosition, topLeft),
		}
	}

	var sub *Page
	switch tp {
	case TypePage:
		sub, err = Load(reg, obj)
	case TypeGrid:
		sub, err = LoadGrid(reg, obj)
	}
	if err != nil {
		return err
	}

	p.size = image.Pt(
		max(p.size.X, topLeft.X+sub.size.X),
		max(p.size.Y, topLeft.Y+sub.size.Y))
	moved, err := TranslateAll(sub.elements, topLeft, p.size)
	if err != nil {
		return err
	}
	p.elements = append(p.elements, moved...)

	label.Logger().Debug("add layout entry",
		"type", tp,
		"top-left", topLeft,
		"layout size", p.size)
	return nil
}
