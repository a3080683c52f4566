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

package page

import (
	"errors"
	"fmt"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
)

// Type selects how an entry of a layout is built.
type Type int

// These are the supported page types.
const (
	// TypePage is a single page, see [Load].
	TypePage Type = iota

	// TypeGrid is a grid of identical cells, see [LoadGrid].
	TypeGrid
)

// ErrUnknownType is wrapped by errors from [ParseType].
var ErrUnknownType = errors.New("unknown page drawer type")

// ParseType converts a tag ("page-drawer" or "grid-drawer") to a Type.
// Tags are case-insensitive.
func ParseType(tag string) (Type, error) {
	switch config.Fold(tag) {
	case "page-drawer":
		return TypePage, nil
	case "grid-drawer":
		return TypeGrid, nil
	default:
		return 0, &label.ValueError{
			Field: KeyPageType,
			Err:   fmt.Errorf("%q: %w", tag, ErrUnknownType),
		}
	}
}

func (t Type) String() string {
	switch t {
	case TypePage:
		return "page-drawer"
	case TypeGrid:
		return "grid-drawer"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}
