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

//go:build !ocr

package ocr

import "image"

// Enabled reports whether text recognition was compiled in.
const Enabled = false

// Client is a placeholder; all operations fail with [ErrOCRNotEnabled].
type Client struct{}

// New returns [ErrOCRNotEnabled].
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing.  It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize returns [ErrOCRNotEnabled].
func (c *Client) Recognize(image.Image) (string, error) {
	return "", ErrOCRNotEnabled
}
