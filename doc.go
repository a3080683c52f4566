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

// Package label composes printable label images from a layout document.
//
// A layout document is a tree of objects, normally read from a JSON, YAML
// or TOML file using [seehuhn.de/go/label/config].  Leaf drawers (barcodes,
// QR codes, Data Matrix symbols, text and image files) are wrapped in
// elements which may rotate and magnify the leaf output.  Elements are
// placed on pages, pages can be repeated in grids, and pages and grids are
// combined into layouts.  All images are single-channel 8-bit gray images,
// where 0 is black and 255 is white.
//
// Drawing a page happens in two phases.  Allocate measures every element by
// drawing it once and creates the page canvas; Draw renders the dynamic
// elements for a given [Context]:
//
//	reg := standard.Registry()
//	doc, err := config.ReadFile("labels.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := page.LoadLayout(reg, doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = p.Allocate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	img, err := p.Draw(label.Texts("ABC-123", "2026-10-14"))
//
// A printed and scanned page can be checked against the layout using
// VerifyImage, which maps each element region back through the inverse of
// the element transformations and asks the leaf drawer whether the content
// is present.
//
// Layout documents may give geometry in metric units.  These are converted
// to pixels by [seehuhn.de/go/label/metric.ConvertLayout] before the
// document is loaded.
//
// This package holds the types shared by all sub-packages: the optional
// message type [Content], the error types, and the module logger.
package label
