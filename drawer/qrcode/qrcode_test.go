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

package qrcode

import (
	"errors"
	"testing"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/raster"
)

func TestQRCode(t *testing.T) {
	for _, level := range []string{"low", "medium", "quartile", "HIGH"} {
		t.Run(level, func(t *testing.T) {
			d, err := New(config.Object{KeyLevel: level})
			if err != nil {
				t.Fatal(err)
			}
			msg := label.Text("https://example.com/item/42")
			img, err := d.Draw(msg)
			if err != nil {
				t.Fatal(err)
			}
			size := raster.Size(img)
			if size.X != size.Y || size.X < 21 {
				t.Fatalf("unexpected size %v", size)
			}
			// finder pattern in the top-left corner, no quiet zone
			if img.GrayAt(0, 0).Y != raster.Black {
				t.Error("top-left module not set")
			}

			ok, err := d.Verify(img, msg)
			if err != nil || !ok {
				t.Errorf("Verify: %t %v", ok, err)
			}
			ok, err = d.Verify(img, label.Text("https://example.com/item/43"))
			if err != nil || ok {
				t.Errorf("Verify with wrong content: %t %v", ok, err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	_, err := New(config.Object{})
	var cfgErr *label.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Key != KeyLevel {
		t.Errorf("missing level: %v", err)
	}

	_, err = New(config.Object{KeyLevel: "extreme"})
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("unknown level: %v", err)
	}
}

// TestDamagedModule checks that verification relies on the error
// correction of the code.
func TestDamagedModule(t *testing.T) {
	d, err := New(config.Object{KeyLevel: "high"})
	if err != nil {
		t.Fatal(err)
	}
	msg := label.Text("hello world")
	img, err := d.Draw(msg)
	if err != nil {
		t.Fatal(err)
	}
	size := raster.Size(img)
	if size.X != 25 {
		t.Fatalf("unexpected size %v", size)
	}

	img.Pix[img.PixOffset(size.X/2, size.Y/2)] ^= 0xFF
	ok, err := d.Verify(img, msg)
	if err != nil || !ok {
		t.Errorf("Verify with one damaged module: %t %v", ok, err)
	}

	ok, err = d.Verify(raster.NewWhite(size), msg)
	if err != nil || ok {
		t.Errorf("Verify of a blank image: %t %v", ok, err)
	}
}
