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

package text

import (
	"testing"

	"seehuhn.de/go/label"
)

func TestVerify(t *testing.T) {
	d, err := New(testArgs())
	if err != nil {
		t.Fatal(err)
	}
	msg := label.Text("Hello")
	img, err := d.Draw(msg)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := d.Verify(img, msg)
	if err != nil || !ok {
		t.Errorf("Verify: %t %v", ok, err)
	}
	ok, err = d.Verify(img, label.Text("Help"))
	if err != nil || ok {
		t.Errorf("Verify with wrong text: %t %v", ok, err)
	}
}
