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

package label

import "strconv"

// Content is an optional message which is passed to a drawer.
// The zero value represents "no content".
type Content struct {
	Text  string
	Valid bool
}

// NoContent is the absent message.
var NoContent = Content{}

// Text returns a [Content] holding the given message.
func Text(s string) Content {
	return Content{Text: s, Valid: true}
}

// Require returns the message, or [ErrContentMissing] if c is not valid.
func (c Content) Require() (string, error) {
	if !c.Valid {
		return "", ErrContentMissing
	}
	return c.Text, nil
}

func (c Content) String() string {
	if !c.Valid {
		return "<none>"
	}
	return strconv.Quote(c.Text)
}

// Context is the list of messages for the elements of a page,
// in element order.
type Context []Content

// Texts builds a context where every entry is present.
func Texts(msg ...string) Context {
	ctx := make(Context, len(msg))
	for i, s := range msg {
		ctx[i] = Text(s)
	}
	return ctx
}
