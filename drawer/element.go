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
	"image"
	"io"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/raster"
)

// Element wraps a leaf drawer.  The leaf output is first rotated and then,
// if a target size is set, magnified by the largest integer factor which
// keeps the result inside the target size.
//
// The zero Element has no leaf drawer; Draw and Verify return
// [label.ErrDrawerNotDefined].
type Element struct {
	leaf     Drawer
	rotation Rotation

	// target is the requested output size, or the zero point if the leaf
	// output is used unscaled.
	target image.Point
}

// NewElement wraps leaf.  If target is the zero point, the output is not
// scaled.
func NewElement(leaf Drawer, rotation Rotation, target image.Point) *Element {
	return &Element{
		leaf:     leaf,
		rotation: rotation,
		target:   target,
	}
}

// LoadElement reads an element from a layout document node.
// The node may have "rotation" and "drawer-size" keys; the leaf drawer is
// constructed by reg from the "drawer-type" and "args" keys.
func LoadElement(reg *Registry, obj config.Object) (*Element, error) {
	e := &Element{}

	if obj.Has(KeyRotation) {
		tag, err := obj.String(KeyRotation)
		if err != nil {
			return nil, err
		}
		e.rotation, err = ParseRotation(tag)
		if err != nil {
			return nil, err
		}
	}

	if obj.Has(KeyDrawerSize) {
		size, err := obj.PositiveSize(KeyDrawerSize)
		if err != nil {
			return nil, err
		}
		e.target = size
	}

	leaf, err := reg.CreateFrom(obj)
	if err != nil {
		return nil, err
	}
	e.leaf = leaf

	return e, nil
}

// Rotation returns the rotation applied to the leaf output.
func (e *Element) Rotation() Rotation {
	return e.rotation
}

// Target returns the requested output size.  The zero point indicates
// that the output is not scaled.
func (e *Element) Target() image.Point {
	return e.target
}

// Draw renders the content.
func (e *Element) Draw(c label.Content) (*image.Gray, error) {
	img, err := e.drawRotated(c)
	if err != nil {
		return nil, err
	}
	if e.target == (image.Point{}) {
		return img, nil
	}

	scale, err := e.scaleFor(raster.Size(img))
	if err != nil {
		return nil, err
	}
	label.Logger().Debug("scale element",
		"rotation", e.rotation,
		"size", raster.Size(img),
		"scale", scale)
	return raster.ScaleUp(img, scale), nil
}

// Verify checks whether img, as produced by [Element.Draw], carries the
// content c.
func (e *Element) Verify(img *image.Gray, c label.Content) (bool, error) {
	if e.leaf == nil {
		return false, label.ErrDrawerNotDefined
	}

	if e.target != (image.Point{}) {
		// The natural size depends on the content, so the leaf has to
		// draw again before the magnification can be undone.
		natural, err := e.drawRotated(c)
		if err != nil {
			return false, err
		}
		scale, err := e.scaleFor(raster.Size(natural))
		if err != nil {
			return false, err
		}
		img = raster.ScaleDown(img, scale)
	}

	return e.leaf.Verify(e.rotation.ApplyInverse(img), c)
}

// Close releases the resources held by the leaf drawer, if the leaf
// implements [io.Closer].
func (e *Element) Close() error {
	if c, ok := e.leaf.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (e *Element) drawRotated(c label.Content) (*image.Gray, error) {
	if e.leaf == nil {
		return nil, label.ErrDrawerNotDefined
	}
	img, err := e.leaf.Draw(c)
	if err != nil {
		return nil, err
	}
	return e.rotation.Apply(img), nil
}

// scaleFor returns the magnification factor for an image of the given
// size.  The factor must be at least 2.
//
// The factor is rounded down, so that the output never exceeds the target
// size.
func (e *Element) scaleFor(size image.Point) (int, error) {
	scale := 0
	if size.X > 0 && size.Y > 0 {
		scale = min(e.target.X/size.X, e.target.Y/size.Y)
	}
	if scale <= 1 {
		return 0, &label.ValueError{
			Field: KeyDrawerSize,
			Err: fmt.Errorf("%w: %v does not fit %v at scale %d",
				label.ErrScale, size, e.target, scale),
		}
	}
	return scale, nil
}
