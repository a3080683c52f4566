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

package raster

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pattern returns a w×h image where every pixel has a different value.
func pattern(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	return img
}

func TestNewWhite(t *testing.T) {
	img := NewWhite(image.Pt(3, 2))
	if d := cmp.Diff(image.Pt(3, 2), Size(img)); d != "" {
		t.Error(d)
	}
	for i, v := range img.Pix {
		if v != White {
			t.Fatalf("pixel %d = %d", i, v)
		}
	}
}

func TestCropPaste(t *testing.T) {
	src := pattern(5, 4)
	part, err := Crop(src, image.Rect(1, 1, 4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(image.Pt(3, 2), Size(part)); d != "" {
		t.Fatal(d)
	}
	if part.GrayAt(0, 0) != src.GrayAt(1, 1) || part.GrayAt(2, 1) != src.GrayAt(3, 2) {
		t.Error("wrong crop contents")
	}

	dst := NewWhite(image.Pt(5, 4))
	err = Paste(dst, part, image.Pt(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	back, _ := Crop(dst, image.Rect(1, 1, 4, 3))
	if !Equal(back, part) {
		t.Error("paste/crop mismatch")
	}
	if dst.GrayAt(0, 0).Y != White {
		t.Error("paste wrote outside the target region")
	}

	err = Paste(dst, part, image.Pt(3, 3))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	_, err = Crop(src, image.Rect(3, 3, 6, 5))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestScale(t *testing.T) {
	for _, k := range []int{2, 3, 4} {
		src := pattern(5, 3)
		big := ScaleUp(src, k)
		if d := cmp.Diff(image.Pt(5*k, 3*k), Size(big)); d != "" {
			t.Fatal(d)
		}
		for y := 0; y < 3*k; y++ {
			for x := 0; x < 5*k; x++ {
				if big.GrayAt(x, y) != src.GrayAt(x/k, y/k) {
					t.Fatalf("k=%d: pixel (%d,%d) differs", k, x, y)
				}
			}
		}
		small := ScaleDown(big, k)
		if !Equal(small, src) {
			t.Errorf("k=%d: ScaleDown(ScaleUp(img)) != img", k)
		}
	}
}

func TestTransforms(t *testing.T) {
	img := pattern(4, 3)

	tr := Transpose(img)
	if d := cmp.Diff(image.Pt(3, 4), Size(tr)); d != "" {
		t.Fatal(d)
	}
	if tr.GrayAt(2, 1) != img.GrayAt(1, 2) {
		t.Error("wrong transpose")
	}
	if !Equal(Transpose(tr), img) {
		t.Error("transpose is not an involution")
	}

	fv := FlipVertical(img)
	if fv.GrayAt(0, 0) != img.GrayAt(3, 0) {
		t.Error("wrong vertical flip")
	}
	if !Equal(FlipVertical(fv), img) {
		t.Error("vertical flip is not an involution")
	}

	fh := FlipHorizontal(img)
	if fh.GrayAt(0, 0) != img.GrayAt(0, 2) {
		t.Error("wrong horizontal flip")
	}
	if !Equal(FlipHorizontal(fh), img) {
		t.Error("horizontal flip is not an involution")
	}
}

func TestBinarize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(img.Pix, []uint8{0, 127, 128, 255})
	got := Binarize(img).Pix
	want := []uint8{Black, Black, White, White}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestFromBitmap(t *testing.T) {
	img := FromBitmap([][]bool{
		{true, false},
		{false, true},
		{true, true},
	})
	want := []uint8{Black, White, White, Black, Black, Black}
	if d := cmp.Diff(want, img.Pix); d != "" {
		t.Error(d)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	img := FromImage(src)
	if d := cmp.Diff(image.Rect(0, 0, 2, 1), img.Bounds()); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]uint8{255, 255}, img.Pix); d != "" {
		t.Error(d)
	}
}
