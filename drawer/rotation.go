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

package drawer

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/raster"
)

// Rotation is a clockwise rotation by a multiple of 90 degrees.
type Rotation int

// These are the supported rotations.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

var rotationTags = [...]string{"0-deg", "90-deg", "180-deg", "270-deg"}

// ErrUnknownRotation is wrapped by errors from [ParseRotation].
var ErrUnknownRotation = errors.New("unknown rotation")

// ParseRotation converts a tag like "90-deg" to a Rotation.
// Tags are case-insensitive.
func ParseRotation(tag string) (Rotation, error) {
	folded := config.Fold(tag)
	for i, t := range rotationTags {
		if t == folded {
			return Rotation(i), nil
		}
	}
	return 0, &label.ValueError{
		Field: KeyRotation,
		Err:   fmt.Errorf("%q: %w", tag, ErrUnknownRotation),
	}
}

func (r Rotation) String() string {
	if r >= 0 && int(r) < len(rotationTags) {
		return rotationTags[r]
	}
	return fmt.Sprintf("Rotation(%d)", int(r))
}

// Apply returns a rotated copy of img.
// For 90 and 270 degrees, width and height are exchanged.
func (r Rotation) Apply(img *image.Gray) *image.Gray {
	switch r {
	case Rotate90:
		return raster.FlipVertical(raster.Transpose(img))
	case Rotate180:
		return raster.FlipHorizontal(raster.FlipVertical(img))
	case Rotate270:
		return raster.FlipHorizontal(raster.Transpose(img))
	default:
		return raster.FromImage(img)
	}
}

// ApplyInverse undoes [Rotation.Apply].
func (r Rotation) ApplyInverse(img *image.Gray) *image.Gray {
	switch r {
	case Rotate90:
		return raster.FlipHorizontal(raster.Transpose(img))
	case Rotate180:
		return raster.FlipHorizontal(raster.FlipVertical(img))
	case Rotate270:
		return raster.FlipVertical(raster.Transpose(img))
	default:
		return raster.FromImage(img)
	}
}
