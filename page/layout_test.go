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
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/internal/testdrawer"
)

func TestLayoutSize(t *testing.T) {
	reg := testdrawer.NewRegistry()
	l, err := LoadLayout(reg, decode(t, `[
		{
			"page-drawer-type": "page-drawer",
			"top-left": {"x": 0, "y": 0},
			"page-size": {"width": 10, "height": 10},
			"elements": {"drawer-type": "test-square", "top-left": {"x": 2, "y": 2}, "static": true}
		},
		{
			"page-drawer-type": "page-drawer",
			"top-left": {"x": 15, "y": 5},
			"page-size": {"width": 10, "height": 10},
			"elements": {"drawer-type": "test-square", "top-left": {"x": 2, "y": 2}, "static": true}
		}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(image.Pt(25, 15), l.Size()); d != "" {
		t.Error(d)
	}

	var got []image.Point
	for _, e := range l.Elements() {
		got = append(got, e.TopLeft())
	}
	if d := cmp.Diff([]image.Point{{2, 2}, {17, 7}}, got); d != "" {
		t.Error(d)
	}

	err = l.Allocate()
	if err != nil {
		t.Fatal(err)
	}
	img, err := l.Draw(l.Context())
	if err != nil {
		t.Fatal(err)
	}
	if img.GrayAt(17, 7).Y != 0 || img.GrayAt(16, 7).Y != 255 {
		t.Error("second sub-page drawn at the wrong position")
	}
}

// TestLayoutGrid combines a page and a grid in one layout.
func TestLayoutGrid(t *testing.T) {
	reg := testdrawer.NewRegistry()
	l, err := LoadLayout(reg, decode(t, `[
		{
			"page-drawer-type": "GRID-DRAWER",
			"top-left": {"x": 5, "y": 0},
			"number": {"x": 3, "y": 1},
			"spacing": {"x": 1, "y": 0},
			"cell-content": `+gridCell+`
		},
		{
			"page-drawer-type": "page-drawer",
			"top-left": {"x": 0, "y": 20},
			"page-size": {"width": 8, "height": 8},
			"elements": {"drawer-type": "test-bits", "top-left": {"x": 0, "y": 0}, "static": false, "content": "id"}
		}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(image.Pt(37, 28), l.Size()); d != "" {
		t.Error(d)
	}
	if n := len(l.Elements()); n != 4 {
		t.Fatalf("got %d elements", n)
	}

	err = l.Allocate()
	if err != nil {
		t.Fatal(err)
	}
	ctx := label.Context{label.NoContent, label.NoContent, label.NoContent, label.Text("ok")}
	_, err = l.Draw(ctx)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := l.Verify(ctx)
	if err != nil || !ok {
		t.Errorf("Verify: %t %v", ok, err)
	}
}

func TestLayoutSingleObject(t *testing.T) {
	reg := testdrawer.NewRegistry()
	l, err := LoadLayout(reg, decode(t, `{
		"page-drawer-type": "page-drawer",
		"top-left": {"x": 3, "y": 4},
		"page-size": {"width": 10, "height": 10}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(image.Pt(13, 14), l.Size()); d != "" {
		t.Error(d)
	}
}

func TestLayoutErrors(t *testing.T) {
	reg := testdrawer.NewRegistry()

	type testCase struct {
		name string
		src  string
		want error
	}
	cases := []testCase{
		{"negative position", `{
			"page-drawer-type": "page-drawer",
			"top-left": {"x": -1, "y": 0},
			"page-size": {"width": 10, "height": 10}
		}`, ErrLayoutPosition},
		{"unknown type", `{
			"page-drawer-type": "book-drawer",
			"top-left": {"x": 0, "y": 0},
			"page-size": {"width": 10, "height": 10}
		}`, ErrUnknownType},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadLayout(reg, decode(t, c.src))
			if !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}

	_, err := LoadLayout(reg, decode(t, `[{"top-left": {"x": 0, "y": 0}}]`))
	var cfgErr *label.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Key != KeyPageType {
		t.Errorf("missing type: %v", err)
	}
}
