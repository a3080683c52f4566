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

// Package ocr recognises printed text in label images, using the
// Tesseract engine via gosseract.
//
// Text recognition is only available if the module is built with the
// "ocr" build tag:
//
//	go build -tags ocr ./...
//
// This requires the Tesseract library to be installed.  Without the tag,
// [New] returns [ErrOCRNotEnabled].
package ocr

import "errors"

// ErrOCRNotEnabled is returned when text recognition was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")
