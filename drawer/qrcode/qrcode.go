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

// Package qrcode implements a leaf drawer for QR codes.
package qrcode

import (
	"errors"
	"fmt"
	"image"

	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/skip2/go-qrcode"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/internal/decode"
	"seehuhn.de/go/label/raster"
)

// Type is the drawer type tag.
const Type = "qrcode"

// KeyLevel is the argument which selects the error correction level.
const KeyLevel = "error-correction-level"

// ErrUnknownLevel is returned for unrecognised error correction levels.
var ErrUnknownLevel = errors.New("unknown error correction level")

var levels = map[string]qrcode.RecoveryLevel{
	"low":      qrcode.Low,
	"medium":   qrcode.Medium,
	"quartile": qrcode.High,
	"high":     qrcode.Highest,
}

var symbol = &decode.Symbol{
	NewReader: zxqrcode.NewQRCodeReader,
	QuietZone: 4,
	Pure:      true,
}

// Drawer draws QR codes with one pixel per module and no quiet zone.
type Drawer struct {
	level qrcode.RecoveryLevel
}

// New constructs a QR code drawer.  The argument "error-correction-level"
// is required and must be one of "low", "medium", "quartile" or "high".
func New(args config.Object) (drawer.Drawer, error) {
	err := args.Require("qrcode drawer", KeyLevel)
	if err != nil {
		return nil, err
	}
	tag, err := args.Tag(KeyLevel)
	if err != nil {
		return nil, err
	}
	level, ok := levels[tag]
	if !ok {
		return nil, &label.ValueError{
			Field: KeyLevel,
			Err:   fmt.Errorf("%q: %w", tag, ErrUnknownLevel),
		}
	}
	return &Drawer{level: level}, nil
}

// Draw implements the [drawer.Drawer] interface.
func (d *Drawer) Draw(c label.Content) (*image.Gray, error) {
	msg, err := c.Require()
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.New(msg, d.level)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true
	return raster.FromBitmap(qr.Bitmap()), nil
}

// Verify implements the [drawer.Drawer] interface.
// The symbol in img is decoded, so that errors within the correction
// capacity of the code are tolerated.
func (d *Drawer) Verify(img *image.Gray, c label.Content) (bool, error) {
	msg, err := c.Require()
	if err != nil {
		return false, err
	}
	ok := symbol.Verify(img, msg)
	label.Logger().Debug("verify QR code", "content", c, "ok", ok)
	return ok, nil
}
