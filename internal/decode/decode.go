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

// Package decode reads the text encoded in a barcode symbol.
//
// The drawers produce symbols with one pixel per module and no quiet zone.
// Before decoding, the candidate image is binarised, surrounded by a white
// quiet zone and magnified, so that the ZXing readers can locate the
// symbol.
package decode

import (
	"image"

	"github.com/makiuchi-d/gozxing"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/raster"
)

// magnify is the number of pixels per module seen by the reader.
const magnify = 4

// Symbol describes how to decode one kind of barcode.
type Symbol struct {
	// NewReader returns a ZXing reader for the symbology.
	NewReader func() gozxing.Reader

	// QuietZone is the width of the white margin added around the
	// image, in modules.
	QuietZone int

	// Pure indicates that the image shows nothing but the symbol,
	// aligned with the pixel grid.
	Pure bool
}

// Text returns the text encoded in img.  If no symbol can be read, ok is
// false.  Decoding failures are normal for damaged or wrong images and
// are logged at debug level only.
func (s *Symbol) Text(img *image.Gray) (text string, ok bool) {
	size := raster.Size(img)
	if size.X == 0 || size.Y == 0 {
		return "", false
	}

	q := s.QuietZone
	framed := raster.NewWhite(size.Add(image.Pt(2*q, 2*q)))
	err := raster.Paste(framed, raster.Binarize(img), image.Pt(q, q))
	if err != nil {
		return "", false
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(raster.ScaleUp(framed, magnify))
	if err != nil {
		label.Logger().Debug("cannot binarize symbol image", "error", err)
		return "", false
	}

	hints := map[gozxing.DecodeHintType]any{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	if s.Pure {
		hints[gozxing.DecodeHintType_PURE_BARCODE] = true
	}
	res, err := s.NewReader().Decode(bmp, hints)
	if err != nil {
		label.Logger().Debug("no symbol found", "error", err)
		return "", false
	}
	return res.GetText(), true
}

// Verify reports whether img shows a symbol which encodes msg.
func (s *Symbol) Verify(img *image.Gray, msg string) bool {
	text, ok := s.Text(img)
	return ok && text == msg
}
