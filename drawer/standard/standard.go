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

// Package standard provides a drawer registry with all leaf drawers of
// this module.
package standard

import (
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/drawer/barcode"
	"seehuhn.de/go/label/drawer/datamatrix"
	"seehuhn.de/go/label/drawer/imagefile"
	"seehuhn.de/go/label/drawer/qrcode"
	"seehuhn.de/go/label/drawer/text"
)

// Registry returns a new registry with the barcode, QR code, Data Matrix,
// text and image file drawers.
func Registry() *drawer.Registry {
	reg := drawer.NewRegistry()
	reg.Register(barcode.Type, barcode.New)
	reg.Register(qrcode.Type, qrcode.New)
	reg.Register(datamatrix.Type, datamatrix.New)
	reg.Register(text.Type, text.New)
	reg.Register(imagefile.Type, imagefile.New)
	return reg
}
