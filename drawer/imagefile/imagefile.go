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

// Package imagefile implements a leaf drawer which shows a fixed image
// read from a file.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.  Color images
// are converted to gray.
package imagefile

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/raster"
)

// Type is the drawer type tag.
const Type = "image-file"

// KeyPath is the argument which names the image file.
const KeyPath = "image-filepath"

// Drawer shows a fixed image.  The content is ignored.
type Drawer struct {
	img *image.Gray
}

// New constructs an image file drawer.  The argument "image-filepath" is
// required; relative names are resolved as described for
// [drawer.ResolvePath].  The file is read once, by New.
func New(args config.Object) (drawer.Drawer, error) {
	err := args.Require("image file drawer", KeyPath)
	if err != nil {
		return nil, err
	}
	fname, err := drawer.ResolvePath(args, KeyPath)
	if err != nil {
		return nil, err
	}

	img, err := imgio.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("image file drawer: %w", err)
	}
	gray := raster.FromImage(effect.Grayscale(img))
	label.Logger().Debug("loaded image file",
		"file", fname,
		"size", raster.Size(gray))

	return FromImage(gray), nil
}

// FromImage returns a drawer which shows a copy of img.
func FromImage(img image.Image) *Drawer {
	return &Drawer{img: raster.FromImage(img)}
}

// Draw implements the [drawer.Drawer] interface.
func (d *Drawer) Draw(label.Content) (*image.Gray, error) {
	return raster.FromImage(d.img), nil
}

// Verify implements the [drawer.Drawer] interface.
// The image must be identical to the one read from the file.
func (d *Drawer) Verify(img *image.Gray, _ label.Content) (bool, error) {
	return raster.Equal(img, d.img), nil
}
