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

// Package text implements a leaf drawer which renders a line of text.
//
// Glyph outlines are read from a TrueType or OpenType font and filled with
// an anti-aliasing rasterizer.  The Go fonts are built in and can be
// selected by name; see [FontNames].
package text

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"
	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/internal/ocr"
	"seehuhn.de/go/label/metric"
	"seehuhn.de/go/label/raster"
)

// Type is the drawer type tag.
const Type = "text"

// Argument keys.
const (
	KeyResolution = "printing-resolution-dpi"
	KeyTextSize   = "image-text-size"
	KeyFontSize   = "font-size"
	KeyFontPath   = "font-filepath"
	KeyFont       = "font"
)

const pointsPerInch = 72

type runeMapper interface {
	Lookup(r rune) glyph.ID
}

// Drawer renders text into an image of fixed size.
type Drawer struct {
	font *sfnt.Font
	cmap runeMapper

	// size is the output image size in pixels
	size image.Point

	// ppem is the font size in pixels
	ppem float64

	// reader is nil unless text recognition is compiled in
	reader *ocr.Client
}

// New constructs a text drawer.
//
// The arguments "printing-resolution-dpi", "image-text-size" and
// "font-size" are required.  The image size is given as a metric size
// object, the font size in points.  The font is read from
// "font-filepath" if present; otherwise the built-in font named by "font"
// is used, with [DefaultFont] as the default.
func New(args config.Object) (drawer.Drawer, error) {
	err := args.Require("text drawer", KeyResolution, KeyTextSize, KeyFontSize)
	if err != nil {
		return nil, err
	}

	dpi, err := args.Float(KeyResolution)
	if err != nil {
		return nil, err
	}
	conv, err := metric.NewConverter(dpi)
	if err != nil {
		return nil, err
	}

	sizeObj, err := args.Object(KeyTextSize)
	if err != nil {
		return nil, err
	}
	size, err := conv.SizeToPixel(sizeObj)
	if err != nil {
		return nil, config.Nest(KeyTextSize, err)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, &label.ValueError{
			Field: KeyTextSize,
			Err:   fmt.Errorf("%w, got %dx%d pixels", config.ErrNotPositive, size.X, size.Y),
		}
	}

	fontSize, err := args.Float(KeyFontSize)
	if err != nil {
		return nil, err
	}
	if !(fontSize > 0) {
		return nil, &label.ValueError{
			Field: KeyFontSize,
			Err:   fmt.Errorf("%w, got %g", config.ErrNotPositive, fontSize),
		}
	}

	F, err := loadFont(args)
	if err != nil {
		return nil, err
	}
	cmap, err := F.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("text drawer font: %w", err)
	}

	d := &Drawer{
		font: F,
		cmap: cmap,
		size: size,
		ppem: fontSize * dpi / pointsPerInch,
	}
	if ocr.Enabled {
		d.reader, err = ocr.New()
		if err != nil {
			return nil, fmt.Errorf("text drawer: %w", err)
		}
	}
	return d, nil
}

// Close releases the text recognition engine.
func (d *Drawer) Close() error {
	return d.reader.Close()
}

// Draw implements the [drawer.Drawer] interface.
//
// The text starts at the left edge of the image.  The baseline is placed
// so that descenders reach the bottom edge.  Text which does not fit is
// cut off.
func (d *Drawer) Draw(c label.Content) (*image.Gray, error) {
	msg, err := c.Require()
	if err != nil {
		return nil, err
	}
	return d.render(norm.NFC.String(msg)), nil
}

func (d *Drawer) render(msg string) *image.Gray {
	img := raster.NewWhite(d.size)
	r := vector.NewRasterizer(d.size.X, d.size.Y)

	scale := d.ppem / float64(d.font.UnitsPerEm)
	baseline := float64(d.size.Y) + float64(d.font.Descent)*scale

	x := 0.0
	for _, c := range msg {
		gid := d.cmap.Lookup(c)
		if gid == 0 {
			label.Logger().Debug("glyph not in font", "rune", string(c))
			continue
		}
		m := matrix.Matrix{scale, 0, 0, scale, 0, 0}.Mul(matrix.Matrix{1, 0, 0, -1, x, baseline})
		d.addGlyph(r, gid, m)
		x += d.font.GlyphWidthPDF(gid) * d.ppem / 1000
	}

	r.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: raster.Black}), image.Point{})
	return img
}

// addGlyph adds the outline of a glyph to the rasterizer path.
func (d *Drawer) addGlyph(r *vector.Rasterizer, gid glyph.ID, m matrix.Matrix) {
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	tr := func(v vec.Vec2) (float32, float32) {
		return float32(aff[0]*v.X + aff[1]*v.Y + aff[2]),
			float32(aff[3]*v.X + aff[4]*v.Y + aff[5])
	}

	for cmd, points := range d.font.Outlines.Path(gid) {
		switch cmd {
		case geompath.CmdMoveTo:
			x, y := tr(points[0])
			r.MoveTo(x, y)
		case geompath.CmdLineTo:
			x, y := tr(points[0])
			r.LineTo(x, y)
		case geompath.CmdQuadTo:
			x1, y1 := tr(points[0])
			x2, y2 := tr(points[1])
			r.QuadTo(x1, y1, x2, y2)
		case geompath.CmdCubeTo:
			x1, y1 := tr(points[0])
			x2, y2 := tr(points[1])
			x3, y3 := tr(points[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case geompath.CmdClose:
			r.ClosePath()
		}
	}
}

// Verify implements the [drawer.Drawer] interface.
//
// If text recognition is compiled in (build tag "ocr"), the text in img
// is recognised and compared to the content, ignoring white space.
// Otherwise the content is rendered again and compared pixel by pixel.
func (d *Drawer) Verify(img *image.Gray, c label.Content) (bool, error) {
	msg, err := c.Require()
	if err != nil {
		return false, err
	}
	msg = norm.NFC.String(msg)

	if d.reader == nil {
		want := d.render(msg)
		ok := raster.Equal(raster.Binarize(img), raster.Binarize(want))
		label.Logger().Debug("verify text by rendering", "content", c, "ok", ok)
		return ok, nil
	}

	found, err := d.reader.Recognize(img)
	if err != nil {
		return false, err
	}
	ok := dropSpace(norm.NFC.String(found)) == dropSpace(msg)
	label.Logger().Debug("verify text by OCR", "content", c, "found", found, "ok", ok)
	return ok, nil
}

func dropSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
