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

package text

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
)

// DefaultFont is used if neither "font" nor "font-filepath" is given.
const DefaultFont = "go-regular"

var goFonts = map[string][]byte{
	"go-bold":             gobold.TTF,
	"go-bold-italic":      gobolditalic.TTF,
	"go-italic":           goitalic.TTF,
	"go-medium":           gomedium.TTF,
	"go-medium-italic":    gomediumitalic.TTF,
	"go-regular":          goregular.TTF,
	"go-smallcaps":        gosmallcaps.TTF,
	"go-smallcaps-italic": gosmallcapsitalic.TTF,
	"go-mono":             gomono.TTF,
	"go-mono-bold":        gomonobold.TTF,
	"go-mono-bold-italic": gomonobolditalic.TTF,
	"go-mono-italic":      gomonoitalic.TTF,
}

// FontNames lists the built-in fonts, in sorted order.
func FontNames() []string {
	return slices.Sorted(maps.Keys(goFonts))
}

// ErrUnknownFont is returned for unrecognised built-in font names.
var ErrUnknownFont = errors.New("unknown font")

// loadFont reads the font selected by the drawer arguments.
func loadFont(args config.Object) (*sfnt.Font, error) {
	var data []byte
	switch {
	case args.Has(KeyFontPath):
		fname, err := drawer.ResolvePath(args, KeyFontPath)
		if err != nil {
			return nil, err
		}
		data, err = os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
	default:
		name := DefaultFont
		if args.Has(KeyFont) {
			var err error
			name, err = args.Tag(KeyFont)
			if err != nil {
				return nil, err
			}
		}
		var ok bool
		data, ok = goFonts[name]
		if !ok {
			return nil, &label.ValueError{
				Field: KeyFont,
				Err:   fmt.Errorf("%q: %w", name, ErrUnknownFont),
			}
		}
	}

	F, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text drawer font: %w", err)
	}
	if F.Outlines == nil {
		return nil, errors.New("text drawer font: no glyph outlines")
	}
	return F, nil
}
