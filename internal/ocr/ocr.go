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

//go:build ocr

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether text recognition was compiled in.
const Enabled = true

// Client recognises single lines of text.
// The client must be closed after use.
type Client struct {
	client *gosseract.Client
}

// New creates a new client.
func New() (*Client, error) {
	client := gosseract.NewClient()
	err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Client{client: client}, nil
}

// Close releases the Tesseract resources.  Calling Close more than once
// has no effect.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// Recognize returns the text shown in img, with leading and trailing
// white space removed.
func (c *Client) Recognize(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		return "", err
	}
	err = c.client.SetImageFromBytes(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
