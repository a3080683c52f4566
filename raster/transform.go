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

import "image"

// Transpose mirrors img along its main diagonal.
// The result has width and height swapped.
func Transpose(img *image.Gray) *image.Gray {
	size := Size(img)
	res := image.NewGray(image.Rect(0, 0, size.Y, size.X))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			res.Pix[x*res.Stride+y] = img.Pix[img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)]
		}
	}
	return res
}

// FlipVertical mirrors img around the vertical axis, so that left and
// right are exchanged.
func FlipVertical(img *image.Gray) *image.Gray {
	size := Size(img)
	res := image.NewGray(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			res.Pix[y*res.Stride+size.X-1-x] = img.Pix[img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)]
		}
	}
	return res
}

// FlipHorizontal mirrors img around the horizontal axis, so that top and
// bottom are exchanged.
func FlipHorizontal(img *image.Gray) *image.Gray {
	size := Size(img)
	res := image.NewGray(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		dst := (size.Y - 1 - y) * res.Stride
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(res.Pix[dst:dst+size.X], img.Pix[src:src+size.X])
	}
	return res
}
