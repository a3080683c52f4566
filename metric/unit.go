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

// Package metric converts between metric lengths and printer pixels.
//
// Layout documents can give geometry in metric units.  [ConvertLayout]
// rewrites all such values to pixels, so that the result can be loaded
// with the functions in [seehuhn.de/go/label/page].
package metric

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
)

// Unit is a metric length unit.
// The units are ordered from largest to smallest.
type Unit int

// These are the supported units.
const (
	Meter Unit = iota
	Decimeter
	Centimeter
	Millimeter
)

var unitTags = [...]string{"m", "dm", "cm", "mm"}

// ErrUnknownUnit is wrapped by errors from [ParseUnit].
var ErrUnknownUnit = errors.New("unknown metric unit")

// ParseUnit converts a tag like "mm" to a Unit.
// Tags are case-insensitive.
func ParseUnit(tag string) (Unit, error) {
	folded := config.Fold(tag)
	for i, t := range unitTags {
		if t == folded {
			return Unit(i), nil
		}
	}
	return 0, &label.ValueError{
		Field: KeyMetricUnit,
		Err:   fmt.Errorf("%q: %w", tag, ErrUnknownUnit),
	}
}

func (u Unit) String() string {
	if u >= 0 && int(u) < len(unitTags) {
		return unitTags[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Factor returns the number of units "to" in one unit u.
// For example, Centimeter.Factor(Millimeter) is 10.
func (u Unit) Factor(to Unit) float64 {
	return math.Pow10(int(to - u))
}
