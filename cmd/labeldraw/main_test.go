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

package main

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/page"
)

const pixelLayout = `[
	{
		"page-drawer-type": "page-drawer",
		"top-left": {"x": 0, "y": 0},
		"page-size": {"width": 120, "height": 20},
		"elements": [
			{
				"drawer-type": "barcode",
				"args": {"height": 6},
				"top-left": {"x": 2, "y": 2},
				"static": false,
				"content": "A-17"
			}
		]
	}
]`

const metricLayout = `
printing-resolution-dpi: 254
layout:
  page-drawer-type: grid-drawer
  top-left: {x: 0, y: 0, metric-unit: mm}
  number: {x: 2, y: 1}
  spacing: {x: 1, y: 0, metric-unit: mm}
  cell-content:
    page-size: {width: 1, height: 0.5, metric-unit: cm}
    elements:
      - drawer-type: data-matrix
        top-left: {x: 1, y: 1, metric-unit: mm}
        static: true
        content: cell
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fname, []byte(data), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestDrawAndVerify(t *testing.T) {
	layout := writeFile(t, "layout.json", pixelLayout)
	out := filepath.Join(t.TempDir(), "out.png")

	err := run(&options{layout: layout, output: out})
	if err != nil {
		t.Fatal(err)
	}
	img, err := readImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(image.Pt(120, 20), img.Bounds().Size()); d != "" {
		t.Error(d)
	}

	err = run(&options{layout: layout, verify: out})
	if err != nil {
		t.Errorf("unmodified image: %v", err)
	}

	ctxFile := writeFile(t, "ctx.txt", "B-99\n")
	err = run(&options{layout: layout, ctxFile: ctxFile, verify: out})
	if !errors.Is(err, errVerifyFailed) {
		t.Errorf("wrong content: expected errVerifyFailed, got %v", err)
	}
}

func TestMetricLayout(t *testing.T) {
	p, err := loadLayout(writeFile(t, "layout.yaml", metricLayout))
	if err != nil {
		t.Fatal(err)
	}
	// two 100×50 cells, 10 pixels apart
	if d := cmp.Diff(image.Pt(210, 50), p.Size()); d != "" {
		t.Error(d)
	}
	var got []image.Point
	for _, e := range p.Elements() {
		got = append(got, e.TopLeft())
	}
	if d := cmp.Diff([]image.Point{{10, 10}, {120, 10}}, got); d != "" {
		t.Error(d)
	}
}

func TestParseContext(t *testing.T) {
	ctx, err := parseContext(strings.NewReader("abc\n-\r\n\nx y\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := label.Context{
		label.Text("abc"),
		label.NoContent,
		label.Text(""),
		label.Text("x y"),
	}
	if d := cmp.Diff(want, ctx); d != "" {
		t.Error(d)
	}
}

func TestContextLength(t *testing.T) {
	layout := writeFile(t, "layout.json", pixelLayout)
	ctxFile := writeFile(t, "ctx.txt", "one\ntwo\n")
	out := filepath.Join(t.TempDir(), "out.bmp")

	err := run(&options{layout: layout, ctxFile: ctxFile, output: out})
	if !errors.Is(err, label.ErrContextLength) {
		t.Errorf("expected ErrContextLength, got %v", err)
	}
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"a.png", "a.PNG", "a.bmp", "a.tif", "a.tiff"} {
		if _, err := encoderFor(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := encoderFor("a.gif"); err == nil {
		t.Error("gif output accepted")
	}
}

func TestUnknownPageType(t *testing.T) {
	layout := writeFile(t, "layout.json", `{"page-drawer-type": "poster", "top-left": {"x": 0, "y": 0}}`)
	_, err := loadLayout(layout)
	if !errors.Is(err, page.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}
