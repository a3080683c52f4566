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
	"fmt"
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/raster"
)

// Element is a drawer element placed on a page.
//
// Static elements always show the content given in the layout document.
// Dynamic elements show the content passed to Draw; the content from the
// layout document, if any, is used to measure the element in Allocate and
// can serve as an identifier.
type Element struct {
	elem     *drawer.Element
	topLeft  image.Point
	pageSize image.Point
	static   bool
	content  label.Content

	// box is the area covered by the element.  This is only set once
	// Allocate has been called.
	box       image.Rectangle
	allocated bool
}

// NewElement places e on a page of the given size.  The top-left corner
// must lie inside the page.
func NewElement(e *drawer.Element, topLeft, pageSize image.Point, static bool, content label.Content) (*Element, error) {
	err := checkPosition(topLeft, pageSize)
	if err != nil {
		return nil, err
	}
	return &Element{
		elem:     e,
		topLeft:  topLeft,
		pageSize: pageSize,
		static:   static,
		content:  content,
	}, nil
}

// LoadElement reads a page element from a layout document node.
//
// The keys "top-left" and "static" are required, "content" is optional.
// All other keys are used to construct the drawer element, see
// [drawer.LoadElement].
func LoadElement(reg *drawer.Registry, obj config.Object, pageSize image.Point) (*Element, error) {
	err := obj.Require("page element", KeyTopLeft, KeyStatic)
	if err != nil {
		return nil, err
	}

	e, err := drawer.LoadElement(reg, obj)
	if err != nil {
		return nil, err
	}
	topLeft, err := obj.Point(KeyTopLeft)
	if err != nil {
		return nil, err
	}
	static, err := obj.Bool(KeyStatic)
	if err != nil {
		return nil, err
	}
	content := label.NoContent
	if obj.Has(KeyContent) {
		s, err := obj.String(KeyContent)
		if err != nil {
			return nil, err
		}
		content = label.Text(s)
	}

	return NewElement(e, topLeft, pageSize, static, content)
}

func checkPosition(p, pageSize image.Point) error {
	if p.X < 0 || p.X >= pageSize.X {
		return &label.ValueError{
			Field: KeyTopLeft + " x",
			Err:   fmt.Errorf("%w: %d not in [0, %d)", label.ErrInvalidPosition, p.X, pageSize.X),
		}
	}
	if p.Y < 0 || p.Y >= pageSize.Y {
		return &label.ValueError{
			Field: KeyTopLeft + " y",
			Err:   fmt.Errorf("%w: %d not in [0, %d)", label.ErrInvalidPosition, p.Y, pageSize.Y),
		}
	}
	return nil
}

func (e *Element) checkBox() error {
	if !e.box.In(image.Rectangle{Max: e.pageSize}) {
		return &label.ValueError{
			Field: "element box",
			Err:   fmt.Errorf("%w: %v on page of size %v", label.ErrOutOfBounds, e.box, e.pageSize),
		}
	}
	return nil
}

// Allocate measures the element by drawing it once, with the content from
// the layout document.  The element must fit on the page.
func (e *Element) Allocate() error {
	img, err := e.elem.Draw(e.content)
	if err != nil {
		return err
	}
	e.box = image.Rectangle{Min: e.topLeft, Max: e.topLeft.Add(raster.Size(img))}
	err = e.checkBox()
	if err != nil {
		e.box = image.Rectangle{}
		return err
	}
	e.allocated = true
	label.Logger().Debug("allocate page element",
		"box", e.box,
		"static", e.static)
	return nil
}

// Draw renders the element into the page canvas.  Static elements ignore
// c and use the content from the layout document.
func (e *Element) Draw(canvas *image.Gray, c label.Content) error {
	if !e.allocated {
		return &label.FlowError{Op: "draw page element", Err: label.ErrNotAllocated}
	}
	if e.static {
		c = e.content
	}

	img, err := e.elem.Draw(c)
	if err != nil {
		return err
	}
	if size := raster.Size(img); size != e.box.Size() {
		return &label.ValueError{
			Field: "element size",
			Err:   fmt.Errorf("%w: %v instead of %v", label.ErrElementSize, size, e.box.Size()),
		}
	}
	label.Logger().Debug("draw page element", "box", e.box, "content", c)
	return raster.Paste(canvas, img, e.box.Min)
}

// reset marks the element as not allocated.
func (e *Element) reset() {
	e.box = image.Rectangle{}
	e.allocated = false
}

// Verify checks whether the element region of canvas carries the content.
func (e *Element) Verify(canvas *image.Gray, c label.Content) (bool, error) {
	if !e.allocated {
		return false, &label.FlowError{Op: "verify page element", Err: label.ErrNotAllocated}
	}
	if e.static {
		c = e.content
	}

	region, err := raster.Crop(canvas, e.box)
	if err != nil {
		return false, err
	}
	ok, err := e.elem.Verify(region, c)
	if err != nil {
		return false, err
	}
	label.Logger().Debug("verify page element", "box", e.box, "content", c, "ok", ok)
	return ok, nil
}

// Translate moves the element by delta and places it on a page of size
// pageSize.  The new top-left corner must lie inside the new page.  If the
// element is allocated, its box is moved as well and must fit on the new
// page.  The element is unchanged if an error is returned.
func (e *Element) Translate(delta, pageSize image.Point) error {
	topLeft := e.topLeft.Add(delta)
	err := checkPosition(topLeft, pageSize)
	if err != nil {
		return err
	}

	moved := *e
	moved.topLeft = topLeft
	moved.pageSize = pageSize
	if e.allocated {
		moved.box = e.box.Add(delta)
		err = moved.checkBox()
		if err != nil {
			return err
		}
	}
	*e = moved
	return nil
}

// TranslateAll returns translated copies of the given elements.
// The original elements are not modified.
func TranslateAll(elems []*Element, delta, pageSize image.Point) ([]*Element, error) {
	res := make([]*Element, len(elems))
	for i, e := range elems {
		c := e.Clone()
		err := c.Translate(delta, pageSize)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// Clone returns a copy of e.  The copy shares the drawer element with e.
func (e *Element) Clone() *Element {
	c := *e
	return &c
}

// IsStatic reports whether the element shows fixed content.
func (e *Element) IsStatic() bool {
	return e.static
}

// Content returns the content given in the layout document.
func (e *Element) Content() label.Content {
	return e.content
}

// TopLeft returns the position of the top-left corner of the element.
func (e *Element) TopLeft() image.Point {
	return e.topLeft
}

// Box returns the area covered by the element.
// The second return value is false if the element is not allocated.
func (e *Element) Box() (image.Rectangle, bool) {
	return e.box, e.allocated
}
