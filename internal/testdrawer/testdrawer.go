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

// Package testdrawer provides simple leaf drawers for use in tests.
package testdrawer

import (
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/raster"
)

// Fixed draws a uniform image of constant size.
// Verification only checks the image size.
type Fixed struct {
	Size  image.Point
	Value uint8

	// NeedContent makes Draw fail with [label.ErrContentMissing] if no
	// content is given.
	NeedContent bool
}

// Draw implements the [drawer.Drawer] interface.
func (f *Fixed) Draw(c label.Content) (*image.Gray, error) {
	if f.NeedContent {
		if _, err := c.Require(); err != nil {
			return nil, err
		}
	}
	img := image.NewGray(image.Rectangle{Max: f.Size})
	for i := range img.Pix {
		img.Pix[i] = f.Value
	}
	return img, nil
}

// Verify implements the [drawer.Drawer] interface.
func (f *Fixed) Verify(img *image.Gray, c label.Content) (bool, error) {
	return raster.Size(img) == f.Size, nil
}

// Bits encodes the message bytes as columns of 8 pixels, with the least
// significant bit at the top.  Set bits are black.
type Bits struct{}

// Draw implements the [drawer.Drawer] interface.
func (Bits) Draw(c label.Content) (*image.Gray, error) {
	msg, err := c.Require()
	if err != nil {
		return nil, err
	}
	img := raster.NewWhite(image.Pt(len(msg), 8))
	for x := 0; x < len(msg); x++ {
		for y := 0; y < 8; y++ {
			if msg[x]&(1<<y) != 0 {
				img.Pix[y*img.Stride+x] = raster.Black
			}
		}
	}
	return img, nil
}

// Verify implements the [drawer.Drawer] interface.
func (b Bits) Verify(img *image.Gray, c label.Content) (bool, error) {
	want, err := b.Draw(c)
	if err != nil {
		return false, err
	}
	return raster.Equal(raster.Binarize(img), want), nil
}

// Type tags registered by [Register].
const (
	TypeBlack   = "test-black"
	TypeWhite   = "test-white"
	TypeSmall   = "test-small"
	TypeMessage = "test-message"
	TypeSquare  = "test-square"
	TypeFixed   = "test-fixed"
	TypeBits    = "test-bits"
)

// Register adds the test drawers to reg:
//
//   - test-black: 100×50, black
//   - test-white: 100×50, white
//   - test-small: 20×10, sample value 1
//   - test-message: like test-small, but content is required
//   - test-square: 5×5, black
//   - test-fixed: size and value from args "width", "height" and "value"
//   - test-bits: see [Bits]
func Register(reg *drawer.Registry) {
	fixed := func(f Fixed) drawer.NewFunc {
		return func(config.Object) (drawer.Drawer, error) {
			res := f
			return &res, nil
		}
	}
	reg.Register(TypeBlack, fixed(Fixed{Size: image.Pt(100, 50), Value: raster.Black}))
	reg.Register(TypeWhite, fixed(Fixed{Size: image.Pt(100, 50), Value: raster.White}))
	reg.Register(TypeSmall, fixed(Fixed{Size: image.Pt(20, 10), Value: 1}))
	reg.Register(TypeMessage, fixed(Fixed{Size: image.Pt(20, 10), Value: 1, NeedContent: true}))
	reg.Register(TypeSquare, fixed(Fixed{Size: image.Pt(5, 5), Value: raster.Black}))
	reg.Register(TypeFixed, newFixed)
	reg.Register(TypeBits, func(config.Object) (drawer.Drawer, error) {
		return Bits{}, nil
	})
}

func newFixed(args config.Object) (drawer.Drawer, error) {
	w, err := args.Int("width")
	if err != nil {
		return nil, err
	}
	h, err := args.Int("height")
	if err != nil {
		return nil, err
	}
	f := &Fixed{Size: image.Pt(w, h)}
	if args.Has("value") {
		v, err := args.Uint("value")
		if err != nil {
			return nil, err
		}
		f.Value = uint8(v)
	}
	return f, nil
}

// NewRegistry returns a registry holding only the test drawers.
func NewRegistry() *drawer.Registry {
	reg := drawer.NewRegistry()
	Register(reg)
	return reg
}
