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

package drawer_test

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
	"seehuhn.de/go/label/drawer"
	"seehuhn.de/go/label/internal/testdrawer"
	"seehuhn.de/go/label/raster"
)

func TestElementScale(t *testing.T) {
	reg := testdrawer.NewRegistry()

	e, err := drawer.LoadElement(reg, config.Object{
		"drawer-type": testdrawer.TypeSquare,
		"drawer-size": config.Object{"width": 20, "height": 20},
	})
	if err != nil {
		t.Fatal(err)
	}
	img, err := e.Draw(label.NoContent)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(image.Pt(20, 20), raster.Size(img)); d != "" {
		t.Error(d)
	}
	ok, err := e.Verify(img, label.NoContent)
	if err != nil || !ok {
		t.Errorf("Verify: %t %v", ok, err)
	}
}

func TestElementScaleTooSmall(t *testing.T) {
	reg := testdrawer.NewRegistry()

	e, err := drawer.LoadElement(reg, config.Object{
		"drawer-type": testdrawer.TypeSquare,
		"drawer-size": config.Object{"width": 8, "height": 8},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = e.Draw(label.NoContent)
	if !errors.Is(err, label.ErrScale) {
		t.Errorf("expected ErrScale, got %v", err)
	}
}

// TestElementScaleFits checks that the scaled output stays within the
// target size.
func TestElementScaleFits(t *testing.T) {
	reg := testdrawer.NewRegistry()

	for _, target := range []image.Point{{14, 14}, {14, 30}, {19, 19}} {
		e, err := drawer.LoadElement(reg, config.Object{
			"drawer-type": testdrawer.TypeSquare,
			"drawer-size": config.Object{"width": target.X, "height": target.Y},
		})
		if err != nil {
			t.Fatal(err)
		}
		img, err := e.Draw(label.NoContent)
		if err != nil {
			t.Fatal(err)
		}
		size := raster.Size(img)
		if size.X > target.X || size.Y > target.Y {
			t.Errorf("target %v: output size %v too large", target, size)
		}
	}
}

// TestElementRoundTrip draws content through rotation and scaling and
// checks that the leaf recognises it after the inverse transformations.
func TestElementRoundTrip(t *testing.T) {
	reg := testdrawer.NewRegistry()
	msg := label.Text("Hi!")

	for _, rot := range []string{"0-deg", "90-deg", "180-deg", "270-deg"} {
		t.Run(rot, func(t *testing.T) {
			e, err := drawer.LoadElement(reg, config.Object{
				"drawer-type": testdrawer.TypeBits,
				"rotation":    rot,
				"drawer-size": config.Object{"width": 30, "height": 30},
			})
			if err != nil {
				t.Fatal(err)
			}
			img, err := e.Draw(msg)
			if err != nil {
				t.Fatal(err)
			}

			// natural size is 3×8 before rotation, scale is 3
			want := image.Pt(9, 24)
			if rot == "90-deg" || rot == "270-deg" {
				want = image.Pt(24, 9)
			}
			if d := cmp.Diff(want, raster.Size(img)); d != "" {
				t.Fatal(d)
			}

			ok, err := e.Verify(img, msg)
			if err != nil || !ok {
				t.Errorf("Verify: %t %v", ok, err)
			}
			ok, err = e.Verify(img, label.Text("Ho!"))
			if err != nil || ok {
				t.Errorf("Verify with wrong content: %t %v", ok, err)
			}
		})
	}
}

func TestElementNotDefined(t *testing.T) {
	var e drawer.Element
	_, err := e.Draw(label.NoContent)
	if !errors.Is(err, label.ErrDrawerNotDefined) {
		t.Errorf("Draw: %v", err)
	}
	_, err = e.Verify(image.NewGray(image.Rect(0, 0, 1, 1)), label.NoContent)
	if !errors.Is(err, label.ErrDrawerNotDefined) {
		t.Errorf("Verify: %v", err)
	}
}

func TestLoadElementErrors(t *testing.T) {
	reg := testdrawer.NewRegistry()

	type testCase struct {
		name string
		obj  config.Object
		want error
	}
	cases := []testCase{
		{"bad rotation", config.Object{
			"drawer-type": testdrawer.TypeSmall,
			"rotation":    "45-deg",
		}, drawer.ErrUnknownRotation},
		{"zero size", config.Object{
			"drawer-type": testdrawer.TypeSmall,
			"drawer-size": config.Object{"width": 0, "height": 10},
		}, config.ErrNotPositive},
		{"unknown type", config.Object{
			"drawer-type": "no-such-drawer",
		}, label.ErrUnknownDrawer},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := drawer.LoadElement(reg, c.obj)
			if !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}
}
