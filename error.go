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

import (
	"errors"
	"strconv"
)

// Sentinel errors.  These are normally wrapped in a [ConfigError],
// [ValueError] or [FlowError] and should be tested with [errors.Is].
var (
	ErrDrawerNotDefined = errors.New("drawer is not defined")
	ErrUnknownDrawer    = errors.New("unknown drawer type")
	ErrScale            = errors.New("scale must be greater than 1")
	ErrInvalidPosition  = errors.New("position outside of page")
	ErrOutOfBounds      = errors.New("element does not fit on page")
	ErrElementSize      = errors.New("element size differs from allocated size")
	ErrNotAllocated     = errors.New("page element not allocated")
	ErrPageNotAllocated = errors.New("page not allocated")
	ErrContextLength    = errors.New("context length does not match number of elements")
	ErrPageImageSize    = errors.New("page image has the wrong size")
	ErrContentMissing   = errors.New("content missing")
)

// ConfigError indicates that a layout document is missing a required key,
// or that a value has the wrong type.
type ConfigError struct {
	// Key is the name of the offending key.
	Key string

	// Where describes the object which was being read,
	// for example "page element" or "grid".
	Where string

	// Err, if non-nil, gives more detail.
	Err error
}

func (err *ConfigError) Error() string {
	where := ""
	if err.Where != "" {
		where = " in " + err.Where
	}
	if err.Err != nil {
		return "key " + strconv.Quote(err.Key) + where + ": " + err.Err.Error()
	}
	return "key " + strconv.Quote(err.Key) + " is missing" + where
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

// ValueError indicates that a value was read successfully but is out of
// range.
type ValueError struct {
	Field string
	Err   error
}

func (err *ValueError) Error() string {
	if err.Field == "" {
		return "invalid value: " + err.Err.Error()
	}
	return "invalid " + err.Field + ": " + err.Err.Error()
}

func (err *ValueError) Unwrap() error {
	return err.Err
}

// FlowError indicates that a method was called out of order,
// for example drawing a page before it was allocated.
type FlowError struct {
	Op  string
	Err error
}

func (err *FlowError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err *FlowError) Unwrap() error {
	return err.Err
}
