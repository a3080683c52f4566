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

// Package page places drawer elements on pages.
//
// A [Page] is a fixed-size canvas with an ordered list of elements.  Grids
// and layouts are built by [LoadGrid] and [LoadLayout]; the result is
// again a Page, with the elements of all cells or sub-pages moved to their
// final positions.
//
// Pages are used in two phases.  [Page.Allocate] measures all elements,
// creates a white canvas and draws the static elements.  After this,
// [Page.Draw] renders the dynamic elements for a given context and
// [Page.Verify] checks the canvas.  Elements are drawn in order, so later
// elements cover earlier ones where they overlap.
package page

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/raster"
)

// Keys used in layout documents.
const (
	KeyTopLeft     = "top-left"
	KeyStatic      = "static"
	KeyContent     = "content"
	KeyPageSize    = "page-size"
	KeyElements    = "elements"
	KeyNumber      = "number"
	KeySpacing     = "spacing"
	KeyCellContent = "cell-content"
	KeyPageType    = "page-drawer-type"
)

// Page is a canvas with drawer elements.
type Page struct {
	size     image.Point
	elements []*Element
	canvas   *image.Gray
}

// New returns a page with the given elements.
// The elements are used directly, not copied.
func New(size image.Point, elements []*Element) *Page {
	return &Page{
		size:     size,
		elements: elements,
	}
}

// Load reads a page from a layout document node.
//
// The key "page-size" is required.  The optional key "elements" holds
// one page element or an array of page elements, see [LoadElement].
func Load(reg *drawer.Registry, obj config.Object) (*Page, error) {
	err := obj.Require("page", KeyPageSize)
	if err != nil {
		return nil, err
	}
	size, err := obj.PositiveSize(KeyPageSize)
	if err != nil {
		return nil, err
	}

	var elements []*Element
	if obj.Has(KeyElements) {
		list, err := obj.List(KeyElements)
		if err != nil {
			return nil, err
		}
		for i, item := range list {
			elemObj, ok := config.AsObject(item)
			if !ok {
				return nil, &label.ConfigError{
					Key: fmt.Sprintf("%s[%d]", KeyElements, i),
					Err: fmt.Errorf("expected object, got %T", item),
				}
			}
			e, err := LoadElement(reg, elemObj, size)
			if err != nil {
				return nil, fmt.Errorf("page element %d: %w", i, err)
			}
			elements = append(elements, e)
		}
	}

	return New(size, elements), nil
}

// Allocate creates a white canvas, measures all elements and draws the
// static elements.  Allocate can be called again to reset the canvas.
// If Allocate fails, the page and all its elements are left unallocated.
func (p *Page) Allocate() error {
	p.canvas = nil
	canvas := raster.NewWhite(p.size)
	for i, e := range p.elements {
		err := e.Allocate()
		if err == nil && e.IsStatic() {
			err = e.Draw(canvas, label.NoContent)
		}
		if err != nil {
			for _, e := range p.elements {
				e.reset()
			}
			return fmt.Errorf("page element %d: %w", i, err)
		}
	}
	p.canvas = canvas
	label.Logger().Debug("allocate page",
		"size", p.size,
		"elements", len(p.elements))
	return nil
}

func (p *Page) check(op string, ctx label.Context) error {
	if len(ctx) != len(p.elements) {
		return &label.ValueError{
			Field: "context",
			Err: fmt.Errorf("%w: %d entries for %d elements",
				label.ErrContextLength, len(ctx), len(p.elements)),
		}
	}
	if p.canvas == nil {
		return &label.FlowError{Op: op, Err: label.ErrPageNotAllocated}
	}
	return nil
}

// Draw renders the dynamic elements into the canvas and returns a copy of
// the canvas.  The context must have one entry per element; the entries
// for static elements are ignored.
func (p *Page) Draw(ctx label.Context) (*image.Gray, error) {
	err := p.check("draw page", ctx)
	if err != nil {
		return nil, err
	}
	for i, e := range p.elements {
		if e.IsStatic() {
			continue
		}
		err := e.Draw(p.canvas, ctx[i])
		if err != nil {
			return nil, fmt.Errorf("page element %d: %w", i, err)
		}
	}
	return raster.FromImage(p.canvas), nil
}

// Verify checks all elements against the canvas.  The context must have
// one entry per element.  The result is true if all elements pass.
func (p *Page) Verify(ctx label.Context) (bool, error) {
	err := p.check("verify page", ctx)
	if err != nil {
		return false, err
	}
	allOK := true
	for i, e := range p.elements {
		ok, err := e.Verify(p.canvas, ctx[i])
		if err != nil {
			return false, fmt.Errorf("page element %d: %w", i, err)
		}
		if !ok {
			label.Logger().Debug("page element failed verification", "element", i)
			allOK = false
		}
	}
	return allOK, nil
}

// VerifyImage replaces the canvas by a copy of img and then calls
// [Page.Verify].  This is used to check printed and scanned pages.
// The page must be allocated and img must have the page size.
func (p *Page) VerifyImage(img image.Image, ctx label.Context) (bool, error) {
	if p.canvas == nil {
		return false, &label.FlowError{Op: "verify page image", Err: label.ErrPageNotAllocated}
	}
	if size := img.Bounds().Size(); size != p.size {
		return false, &label.ValueError{
			Field: "page image",
			Err:   fmt.Errorf("%w: %v instead of %v", label.ErrPageImageSize, size, p.size),
		}
	}
	p.canvas = raster.FromImage(img)
	return p.Verify(ctx)
}

// Close releases the resources held by the leaf drawers.  Elements
// copied into several grid cells share their drawer, which is closed
// only once.
func (p *Page) Close() error {
	seen := make(map[*drawer.Element]bool)
	var errs []error
	for _, e := range p.elements {
		if seen[e.elem] {
			continue
		}
		seen[e.elem] = true
		if err := e.elem.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the page size.
func (p *Page) Size() image.Point {
	return p.size
}

// Elements returns copies of the page elements, in drawing order.
func (p *Page) Elements() []*Element {
	res := make([]*Element, len(p.elements))
	for i, e := range p.elements {
		res[i] = e.Clone()
	}
	return res
}

// Canvas returns the page canvas, or nil if the page is not allocated.
// The canvas is shared with the page and must not be modified.
func (p *Page) Canvas() *image.Gray {
	return p.canvas
}

// Context returns a context which holds the content from the layout
// document for every element.
func (p *Page) Context() label.Context {
	ctx := make(label.Context, len(p.elements))
	for i, e := range p.elements {
		ctx[i] = e.Content()
	}
	return ctx
}
