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

// Package datamatrix implements a leaf drawer for Data Matrix symbols.
package datamatrix

import (
	"image"

	"github.com/boombuler/barcode/datamatrix"
	"github.com/makiuchi-d/gozxing"
	zxdatamatrix "github.com/makiuchi-d/gozxing/datamatrix"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/internal/decode"
	"seehuhn.de/go/label/raster"
)

// Type is the drawer type tag.
const Type = "data-matrix"

var symbol = &decode.Symbol{
	NewReader: func() gozxing.Reader { return zxdatamatrix.NewDataMatrixReader() },
	QuietZone: 2,
	Pure:      true,
}

// Drawer draws Data Matrix symbols with one pixel per module.
type Drawer struct{}

// New constructs a Data Matrix drawer.  There are no arguments.
func New(config.Object) (drawer.Drawer, error) {
	return Drawer{}, nil
}

// Draw implements the [drawer.Drawer] interface.
func (Drawer) Draw(c label.Content) (*image.Gray, error) {
	msg, err := c.Require()
	if err != nil {
		return nil, err
	}
	code, err := datamatrix.Encode(msg)
	if err != nil {
		return nil, err
	}
	return raster.Binarize(raster.FromImage(code)), nil
}

// Verify implements the [drawer.Drawer] interface.
// The symbol in img is decoded and the text compared to the content.
func (Drawer) Verify(img *image.Gray, c label.Content) (bool, error) {
	msg, err := c.Require()
	if err != nil {
		return false, err
	}
	ok := symbol.Verify(img, msg)
	label.Logger().Debug("verify data matrix", "content", c, "ok", ok)
	return ok, nil
}
