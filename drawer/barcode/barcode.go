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

// Package barcode implements a leaf drawer for Code 128 barcodes.
package barcode

import (
	"errors"
	"fmt"
	"image"

	"github.com/boombuler/barcode/code128"
	"github.com/makiuchi-d/gozxing/oned"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/internal/decode"
	"seehuhn.de/go/label/raster"
)

// Type is the drawer type tag.
const Type = "barcode"

// ErrHeight is returned for non-positive bar heights.
var ErrHeight = errors.New("bar height must be positive")

// Code 128 needs a quiet zone of ten modules on either side.
var symbol = &decode.Symbol{
	NewReader: oned.NewCode128Reader,
	QuietZone: 10,
}

// Drawer draws Code 128 barcodes with one pixel per module.
type Drawer struct {
	height int
}

// New constructs a barcode drawer.  The optional argument "height" gives
// the bar height in pixels; the default is 1.
func New(args config.Object) (drawer.Drawer, error) {
	d := &Drawer{height: 1}
	if args.Has("height") {
		h, err := args.Int("height")
		if err != nil {
			return nil, err
		}
		if h <= 0 {
			return nil, &label.ValueError{
				Field: "height",
				Err:   fmt.Errorf("%w, got %d", ErrHeight, h),
			}
		}
		d.height = h
	}
	return d, nil
}

// Draw implements the [drawer.Drawer] interface.
func (d *Drawer) Draw(c label.Content) (*image.Gray, error) {
	msg, err := c.Require()
	if err != nil {
		return nil, err
	}
	code, err := code128.Encode(msg)
	if err != nil {
		return nil, err
	}

	row := raster.FromImage(code)
	w := raster.Size(row).X
	img := image.NewGray(image.Rect(0, 0, w, d.height))
	for y := 0; y < d.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w], row.Pix[:w])
	}
	return img, nil
}

// Verify implements the [drawer.Drawer] interface.
// The rows of img are scanned for a barcode which encodes the content;
// rows damaged by noise are skipped.
func (d *Drawer) Verify(img *image.Gray, c label.Content) (bool, error) {
	msg, err := c.Require()
	if err != nil {
		return false, err
	}
	ok := symbol.Verify(img, msg)
	label.Logger().Debug("verify barcode", "content", c, "ok", ok)
	return ok, nil
}
