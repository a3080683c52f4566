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

// Package config reads layout documents.
//
// A layout document is a tree built from [Object] values, []any slices,
// strings, booleans and numbers.  The accessor methods on [Object] convert
// values to the types used by the drawers and report problems as
// [label.ConfigError] or [label.ValueError].
package config

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/text/cases"

	"seehuhn.de/go/label"
)

// Object is a node of a layout document.
type Object map[string]any

// AsObject converts v to an [Object], if v represents one.
func AsObject(v any) (Object, bool) {
	switch x := v.(type) {
	case Object:
		return x, true
	case map[string]any:
		return Object(x), true
	default:
		return nil, false
	}
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Require checks that all given keys are present.
// The first missing key is reported as a [label.ConfigError].
func (o Object) Require(where string, keys ...string) error {
	for _, key := range keys {
		if !o.Has(key) {
			return &label.ConfigError{Key: key, Where: where}
		}
	}
	return nil
}

func (o Object) get(key string) (any, error) {
	v, ok := o[key]
	if !ok {
		return nil, &label.ConfigError{Key: key}
	}
	return v, nil
}

func wrongType(key, want string, v any) error {
	return &label.ConfigError{
		Key: key,
		Err: fmt.Errorf("expected %s, got %T", want, v),
	}
}

// String returns the string stored under key.
func (o Object) String(key string) (string, error) {
	v, err := o.get(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string", v)
	}
	return s, nil
}

// Tag returns the string stored under key, trimmed and case folded.
func (o Object) Tag(key string) (string, error) {
	s, err := o.String(key)
	if err != nil {
		return "", err
	}
	return Fold(s), nil
}

// Fold trims and case folds a tag, so that "90-DEG" and "90-deg" compare
// equal.
func Fold(tag string) string {
	return cases.Fold().String(strings.TrimSpace(tag))
}

// Bool returns the boolean stored under key.
func (o Object) Bool(key string) (bool, error) {
	v, err := o.get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, "boolean", v)
	}
	return b, nil
}

// Int returns the integer stored under key.
func (o Object) Int(key string) (int, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	x, ok := Number[int](v)
	if !ok {
		return 0, wrongType(key, "integer", v)
	}
	return x, nil
}

// Uint returns the non-negative integer stored under key.
func (o Object) Uint(key string) (uint, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	x, ok := Number[uint](v)
	if !ok {
		return 0, wrongType(key, "non-negative integer", v)
	}
	return x, nil
}

// Float returns the number stored under key.
func (o Object) Float(key string) (float64, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	x, ok := Number[float64](v)
	if !ok {
		return 0, wrongType(key, "number", v)
	}
	return x, nil
}

// Object returns the object stored under key.
func (o Object) Object(key string) (Object, error) {
	v, err := o.get(key)
	if err != nil {
		return nil, err
	}
	obj, ok := AsObject(v)
	if !ok {
		return nil, wrongType(key, "object", v)
	}
	return obj, nil
}

// List returns the array stored under key.  A single value which is not
// an array is returned as a list of length one.
func (o Object) List(key string) ([]any, error) {
	v, err := o.get(key)
	if err != nil {
		return nil, err
	}
	return AsList(v), nil
}

// AsList returns v if it is an array, and a one-element list otherwise.
func AsList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return []any{v}
}

// Point returns the point {"x": ..., "y": ...} stored under key.
func (o Object) Point(key string) (image.Point, error) {
	obj, err := o.Object(key)
	if err != nil {
		return image.Point{}, err
	}
	x, err := obj.Int("x")
	if err != nil {
		return image.Point{}, Nest(key, err)
	}
	y, err := obj.Int("y")
	if err != nil {
		return image.Point{}, Nest(key, err)
	}
	return image.Pt(x, y), nil
}

// Size returns the size {"width": ..., "height": ...} stored under key.
// The width is returned in the X component, the height in Y.
func (o Object) Size(key string) (image.Point, error) {
	obj, err := o.Object(key)
	if err != nil {
		return image.Point{}, err
	}
	w, err := obj.Int("width")
	if err != nil {
		return image.Point{}, Nest(key, err)
	}
	h, err := obj.Int("height")
	if err != nil {
		return image.Point{}, Nest(key, err)
	}
	return image.Pt(w, h), nil
}

// ErrNotPositive is wrapped by the errors of [Object.PositiveSize].
var ErrNotPositive = errors.New("must be greater than zero")

// PositiveSize is like [Object.Size], but requires both dimensions to be
// greater than zero.
func (o Object) PositiveSize(key string) (image.Point, error) {
	size, err := o.Size(key)
	if err != nil {
		return size, err
	}
	if size.X <= 0 {
		return image.Point{}, &label.ValueError{
			Field: key + " width",
			Err:   fmt.Errorf("%w, got %d", ErrNotPositive, size.X),
		}
	}
	if size.Y <= 0 {
		return image.Point{}, &label.ValueError{
			Field: key + " height",
			Err:   fmt.Errorf("%w, got %d", ErrNotPositive, size.Y),
		}
	}
	return size, nil
}

// Nest prefixes the key of a [label.ConfigError] with the key of the
// enclosing object.  Other errors are returned unchanged.
func Nest(outer string, err error) error {
	var cfgErr *label.ConfigError
	if errors.As(err, &cfgErr) {
		return &label.ConfigError{
			Key:   outer + "." + cfgErr.Key,
			Where: cfgErr.Where,
			Err:   cfgErr.Err,
		}
	}
	return err
}

// Clone returns a deep copy of a document tree.
func Clone(v any) any {
	switch x := v.(type) {
	case Object:
		res := make(Object, len(x))
		for key, val := range x {
			res[key] = Clone(val)
		}
		return res
	case map[string]any:
		return Clone(Object(x))
	case []any:
		res := make([]any, len(x))
		for i, val := range x {
			res[i] = Clone(val)
		}
		return res
	default:
		return v
	}
}
