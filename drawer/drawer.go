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

// Package drawer defines the interface implemented by leaf drawers, the
// registry used to construct them from a layout document, and [Element],
// which applies rotation and magnification to the output of a leaf
// drawer.
package drawer

import (
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
)

// Drawer is a leaf content generator.
type Drawer interface {
	// Draw renders the content as a gray image with origin (0, 0).
	// Drawers which need a message return [label.ErrContentMissing] if c
	// is not valid.
	Draw(c label.Content) (*image.Gray, error)

	// Verify checks whether img carries the content c.
	// A false result is a normal outcome, errors are reserved for
	// problems which prevent the check itself.
	Verify(img *image.Gray, c label.Content) (bool, error)
}

// NewFunc constructs a drawer from the "args" object of a layout document
// node.  The object is empty, not nil, if the node has no arguments.
type NewFunc func(args config.Object) (Drawer, error)

// Keys used in layout documents.
const (
	KeyDrawerType = "drawer-type"
	KeyArgs       = "args"
	KeyRotation   = "rotation"
	KeyDrawerSize = "drawer-size"
)
