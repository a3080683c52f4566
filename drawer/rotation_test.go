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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/raster"
)

var allRotations = []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

func testImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(3*i + 1)
	}
	return img
}

// TestRotationInverse checks that ApplyInverse undoes Apply, for square
// and non-square images.
func TestRotationInverse(t *testing.T) {
	sizes := []image.Point{{1, 1}, {4, 4}, {5, 3}, {2, 7}}
	for _, r := range allRotations {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s-%dx%d", r, size.X, size.Y), func(t *testing.T) {
				img := testImage(size.X, size.Y)
				rotated := r.Apply(img)

				wantSize := size
				if r == Rotate90 || r == Rotate270 {
					wantSize = image.Pt(size.Y, size.X)
				}
				if d := cmp.Diff(wantSize, raster.Size(rotated)); d != "" {
					t.Fatal(d)
				}

				back := r.ApplyInverse(rotated)
				if !raster.Equal(img, back) {
					t.Error("ApplyInverse(Apply(img)) != img")
				}
			})
		}
	}
}

// TestRotationDirection checks that 90 degrees is a clockwise rotation.
func TestRotationDirection(t *testing.T) {
	img := raster.NewWhite(image.Pt(3, 2))
	img.Pix[0] = raster.Black // top-left

	type testCase struct {
		r    Rotation
		want image.Point
	}
	cases := []testCase{
		{Rotate0, image.Pt(0, 0)},
		{Rotate90, image.Pt(1, 0)},
		{Rotate180, image.Pt(2, 1)},
		{Rotate270, image.Pt(0, 2)},
	}
	for _, c := range cases {
		out := c.r.Apply(img)
		if out.GrayAt(c.want.X, c.want.Y).Y != raster.Black {
			t.Errorf("%s: marked pixel not at %v", c.r, c.want)
		}
	}
}

func TestParseRotation(t *testing.T) {
	for _, r := range allRotations {
		got, err := ParseRotation(r.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Errorf("%s: got %s", r, got)
		}
	}

	got, err := ParseRotation("270-DEG")
	if err != nil || got != Rotate270 {
		t.Errorf("270-DEG: %s %v", got, err)
	}

	_, err = ParseRotation("45-deg")
	var valErr *label.ValueError
	if !errors.As(err, &valErr) || !errors.Is(err, ErrUnknownRotation) {
		t.Errorf("45-deg: %v", err)
	}
}
