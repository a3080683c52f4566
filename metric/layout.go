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

package metric

import (
	"image"

	"seehuhn.de/go/label"
	"seehuhn.de/go/label/config"
)

// Keys used in layout documents.
const (
	KeyResolution = "printing-resolution-dpi"
	KeyLayout     = "layout"
	KeyMetricUnit = "metric-unit"
)

// pointKeys and sizeKeys list the objects which hold geometry.
var (
	pointKeys = map[string]bool{
		"top-left": true,
		"spacing":  true,
	}
	sizeKeys = map[string]bool{
		"page-size":   true,
		"drawer-size": true,
	}
)

// ConvertLayout rewrites the metric geometry of a layout document in
// pixels.
//
// The document must have the keys "printing-resolution-dpi" and "layout".
// In the "layout" subtree, every object stored under one of the keys
// "top-left", "spacing", "page-size" and "drawer-size" must have a
// "metric-unit" key.  The numbers in these objects are converted to pixels
// and the "metric-unit" key is removed.  The converted "layout" subtree is
// returned; doc itself is not modified.
func ConvertLayout(doc config.Object) (any, error) {
	err := doc.Require("metric layout", KeyResolution, KeyLayout)
	if err != nil {
		return nil, err
	}
	dpi, err := doc.Float(KeyResolution)
	if err != nil {
		return nil, err
	}
	c, err := NewConverter(dpi)
	if err != nil {
		return nil, err
	}

	layout := config.Clone(doc[KeyLayout])
	label.Logger().Debug("convert metric layout", "dpi", dpi)
	err = c.convert(KeyLayout, layout)
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// convert rewrites v in place.  The key is the name under which v is
// stored in its parent object.
func (c *Converter) convert(key string, v any) error {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			err := c.convert("", item)
			if err != nil {
				return err
			}
		}
		return nil
	}

	obj, ok := config.AsObject(v)
	if !ok {
		return nil
	}

	switch {
	case pointKeys[key]:
		p, err := c.PointToPixel(obj)
		if err != nil {
			return config.Nest(key, err)
		}
		delete(obj, KeyMetricUnit)
		obj["x"] = p.X
		obj["y"] = p.Y
	case sizeKeys[key]:
		s, err := c.SizeToPixel(obj)
		if err != nil {
			return config.Nest(key, err)
		}
		delete(obj, KeyMetricUnit)
		obj["width"] = s.X
		obj["height"] = s.Y
	default:
		for childKey, child := range obj {
			err := c.convert(childKey, child)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// PointToPixel converts an object {"x": ..., "y": ..., "metric-unit": ...}
// to a point in pixels.
func (c *Converter) PointToPixel(obj config.Object) (image.Point, error) {
	u, err := readUnit(obj, "metric point")
	if err != nil {
		return image.Point{}, err
	}
	x, err := obj.Float("x")
	if err != nil {
		return image.Point{}, err
	}
	y, err := obj.Float("y")
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(c.ToPixel(x, u), c.ToPixel(y, u)), nil
}

// SizeToPixel converts an object {"width": ..., "height": ...,
// "metric-unit": ...} to a size in pixels.
// The width is returned in the X component, the height in Y.
func (c *Converter) SizeToPixel(obj config.Object) (image.Point, error) {
	u, err := readUnit(obj, "metric size")
	if err != nil {
		return image.Point{}, err
	}
	w, err := obj.Float("width")
	if err != nil {
		return image.Point{}, err
	}
	h, err := obj.Float("height")
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(c.ToPixel(w, u), c.ToPixel(h, u)), nil
}

func readUnit(obj config.Object, where string) (Unit, error) {
	err := obj.Require(where, KeyMetricUnit)
	if err != nil {
		return 0, err
	}
	tag, err := obj.String(KeyMetricUnit)
	if err != nil {
		return 0, err
	}
	return ParseUnit(tag)
}
