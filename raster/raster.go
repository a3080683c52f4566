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

// Package raster implements helpers for the single-channel images used by
// the drawers.
//
// All images handled here are of type [*image.Gray] with the origin at
// (0, 0).  Sample value 0 is black (marked) and 255 is white
// (background).
package raster

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// White and Black are the two sample values used by the drawers.
const (
	White uint8 = 255
	Black uint8 = 0
)

// Threshold is the sample value below which a pixel counts as marked.
const Threshold uint8 = 128

// ErrOutOfBounds is returned when an image does not fit into the
// destination area.
var ErrOutOfBounds = errors.New("image out of bounds")

// NewWhite allocates a white image of the given size.
func NewWhite(size image.Point) *image.Gray {
	img := image.NewGray(image.Rectangle{Max: size})
	for i := range img.Pix {
		img.Pix[i] = White
	}
	return img
}

// Size returns the width and height of img.
func Size(img image.Image) image.Point {
	return img.Bounds().Size()
}

// FromImage converts an arbitrary image to a gray image with origin
// (0, 0).  If img already has this form, it is copied.
func FromImage(img image.Image) *image.Gray {
	b := img.Bounds()
	res := image.NewGray(image.Rectangle{Max: b.Size()})
	draw.Draw(res, res.Bounds(), img, b.Min, draw.Src)
	return res
}

// Crop returns a copy of the region r of img.  The region must lie inside
// the image bounds.
func Crop(img *image.Gray, r image.Rectangle) (*image.Gray, error) {
	if !r.In(img.Bounds()) {
		return nil, fmt.Errorf("crop %v from %v: %w", r, img.Bounds(), ErrOutOfBounds)
	}
	res := image.NewGray(image.Rectangle{Max: r.Size()})
	for y := 0; y < r.Dy(); y++ {
		src := img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(res.Pix[y*res.Stride:y*res.Stride+r.Dx()], img.Pix[src:src+r.Dx()])
	}
	return res, nil
}

// Paste copies src into dst, with the top-left corner of src placed at
// the point at.  The whole of src must fit into dst.
func Paste(dst, src *image.Gray, at image.Point) error {
	r := image.Rectangle{Min: at, Max: at.Add(Size(src))}
	if !r.In(dst.Bounds()) {
		return fmt.Errorf("paste %v into %v: %w", r, dst.Bounds(), ErrOutOfBounds)
	}
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)
	return nil
}

// ScaleUp magnifies img by the integer factor k, using nearest-neighbour
// interpolation.  Every source pixel becomes a k×k block.
func ScaleUp(img *image.Gray, k int) *image.Gray {
	size := Size(img).Mul(k)
	res := image.NewGray(image.Rectangle{Max: size})
	draw.NearestNeighbor.Scale(res, res.Bounds(), img, img.Bounds(), draw.Src, nil)
	return res
}

// ScaleDown shrinks img by the integer factor k, using nearest-neighbour
// interpolation.  This is the inverse of [ScaleUp].  Trailing rows and
// columns which do not fill a complete k×k block are dropped.
func ScaleDown(img *image.Gray, k int) *image.Gray {
	size := Size(img).Div(k)
	res := image.NewGray(image.Rectangle{Max: size})
	if size.X == 0 || size.Y == 0 {
		return res
	}
	src := img.Bounds()
	src.Max = src.Min.Add(size.Mul(k))
	draw.NearestNeighbor.Scale(res, res.Bounds(), img, src, draw.Src, nil)
	return res
}

// Equal reports whether two images have the same size and the same
// samples.
func Equal(a, b *image.Gray) bool {
	size := Size(a)
	if size != Size(b) {
		return false
	}
	for y := 0; y < size.Y; y++ {
		ia := a.PixOffset(a.Rect.Min.X, a.Rect.Min.Y+y)
		ib := b.PixOffset(b.Rect.Min.X, b.Rect.Min.Y+y)
		rowA := a.Pix[ia : ia+size.X]
		rowB := b.Pix[ib : ib+size.X]
		for x := range rowA {
			if rowA[x] != rowB[x] {
				return false
			}
		}
	}
	return true
}

// Binarize maps every sample below [Threshold] to black and all other
// samples to white.
func Binarize(img *image.Gray) *image.Gray {
	size := Size(img)
	res := image.NewGray(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if img.GrayAt(img.Rect.Min.X+x, img.Rect.Min.Y+y).Y < Threshold {
				res.Pix[y*res.Stride+x] = Black
			} else {
				res.Pix[y*res.Stride+x] = White
			}
		}
	}
	return res
}

// FromBitmap converts a module matrix, indexed as bits[row][column], to an
// image with one pixel per module.  Set modules are black.
func FromBitmap(bits [][]bool) *image.Gray {
	h := len(bits)
	w := 0
	if h > 0 {
		w = len(bits[0])
	}
	img := NewWhite(image.Pt(w, h))
	for y, row := range bits {
		for x, set := range row {
			if set && x < w {
				img.Pix[y*img.Stride+x] = Black
			}
		}
	}
	return img
}
