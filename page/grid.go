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
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
)

// Errors for invalid grid parameters.
var (
	ErrGridNumber  = errors.New("number of cells must be positive")
	ErrGridSpacing = errors.New("spacing must not be negative")
)

// LoadGrid reads a grid from a layout document node.
//
// The keys "number" (cells in x and y direction), "spacing" (pixels between
// cells) and "cell-content" (a page, see [Load]) are required.  Cells are
// placed column by column.
func LoadGrid(reg *drawer.Registry, obj config.Object) (*Page, error) {
	err := obj.Require("grid", KeyNumber, KeySpacing, KeyCellContent)
	if err != nil {
		return nil, err
	}

	number, err := obj.Point(KeyNumber)
	if err != nil {
		return nil, err
	}
	if number.X <= 0 || number.Y <= 0 {
		return nil, &label.ValueError{
			Field: KeyNumber,
			Err:   fmt.Errorf("%w, got %v", ErrGridNumber, number),
		}
	}
	spacing, err := obj.Point(KeySpacing)
	if err != nil {
		return nil, err
	}
	if spacing.X < 0 || spacing.Y < 0 {
		return nil, &label.ValueError{
			Field: KeySpacing,
			Err:   fmt.Errorf("%w, got %v", ErrGridSpacing, spacing),
		}
	}

	cellObj, err := obj.Object(KeyCellContent)
	if err != nil {
		return nil, err
	}
	cell, err := Load(reg, cellObj)
	if err != nil {
		return nil, fmt.Errorf("grid cell: %w", err)
	}

	cellSize := cell.Size()
	size := image.Pt(
		number.X*cellSize.X+(number.X-1)*spacing.X,
		number.Y*cellSize.Y+(number.Y-1)*spacing.Y)
	step := cellSize.Add(spacing)

	var elements []*Element
	for x := 0; x < number.X; x++ {
		for y := 0; y < number.Y; y++ {
			offset := image.Pt(x*step.X, y*step.Y)
			moved, err := TranslateAll(cell.elements, offset, size)
			if err != nil {
				return nil, fmt.Errorf("grid cell (%d, %d): %w", x, y, err)
			}
			elements = append(elements, moved...)
		}
	}

	label.Logger().Debug("load grid",
		"number", number,
		"cell", cellSize,
		"size", size)
	return New(size, elements), nil
}
