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

package config

import (
	"encoding/json"
	"math"

	"golang.org/x/exp/constraints"
)

// Number converts a numeric document value to T.
//
// The decoders produce different Go types for numbers: json.Number for
// JSON, int or float64 for YAML, int64 or float64 for TOML.  All of these
// are accepted.  The conversion fails if v is not a number, or if the
// value cannot be represented exactly as a T.  In particular, 4.0
// converts to the integer 4 but 4.5 does not.
func Number[T constraints.Integer | constraints.Float](v any) (T, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return 0, false
	}

	var zero, one T = 0, 1
	if f < 0 && zero-one > zero {
		// T is unsigned
		return 0, false
	}

	t := T(f)
	if float64(t) != f {
		return 0, false
	}
	return t, true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return float64(i), true
		}
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
