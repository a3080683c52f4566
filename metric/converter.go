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

package metric

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/label"
)

// DefaultDPI is the printing resolution used by [Default].
const DefaultDPI = 600

const mmPerInch = 25.4

// ErrResolution is wrapped by errors from [NewConverter].
var ErrResolution = errors.New("printing resolution must be positive")

// Converter converts between metric lengths and pixels at a fixed
// printing resolution.
type Converter struct {
	dpi  float64
	ppmm float64
}

// NewConverter returns a converter for the given printing resolution,
// in dots per inch.
func NewConverter(dpi float64) (*Converter, error) {
	if !(dpi > 0) || math.IsInf(dpi, 0) {
		return nil, &label.ValueError{
			Field: KeyResolution,
			Err:   fmt.Errorf("%w, got %g", ErrResolution, dpi),
		}
	}
	return &Converter{
		dpi:  dpi,
		ppmm: dpi / mmPerInch,
	}, nil
}

// Default returns a converter for [DefaultDPI].
func Default() *Converter {
	return &Converter{
		dpi:  DefaultDPI,
		ppmm: DefaultDPI / mmPerInch,
	}
}

// DPI returns the printing resolution in dots per inch.
func (c *Converter) DPI() float64 {
	return c.dpi
}

// PixelsPerMillimeter returns the number of pixels in one millimeter.
func (c *Converter) PixelsPerMillimeter() float64 {
	return c.ppmm
}

// ToPixel converts a length to the nearest whole number of pixels.
func (c *Converter) ToPixel(v float64, u Unit) int {
	return int(math.Round(v * c.ppmm * u.Factor(Millimeter)))
}

// ToMetric converts a number of pixels to a length in unit u.
// This is the inverse of [Converter.ToPixel], up to the rounding in
// ToPixel.
func (c *Converter) ToMetric(px int, u Unit) float64 {
	return float64(px) / (c.ppmm * u.Factor(Millimeter))
}
