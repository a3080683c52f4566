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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the syntax of a layout document.
type Format int

// These are the supported document formats.
const (
	JSON Format = iota
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned by [FormatFromPath] for unrecognised file
// name extensions.
var ErrUnknownFormat = errors.New("unknown document format")

// FormatFromPath selects a format based on the file name extension.
func FormatFromPath(path string) (Format, error) {
	switch Fold(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// ReadFile reads a layout document from a file.
// The format is determined by the file name extension.
func ReadFile(path string) (any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	doc, err := Decode(fd, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a layout document in the given format.
//
// Objects in the returned tree are of type [Object], arrays are []any.
// The root of a JSON or YAML document may be an array; the root of a TOML
// document is always an object.
func Decode(r io.Reader, format Format) (any, error) {
	var doc any
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		err := dec.Decode(&doc)
		if err != nil {
			return nil, err
		}
	case YAML:
		err := yaml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, err
		}
	case TOML:
		var root map[string]any
		err := toml.NewDecoder(r).Decode(&root)
		if err != nil {
			return nil, err
		}
		doc = root
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	return normalize(doc), nil
}

// normalize converts all maps in a decoded tree to [Object].
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(Object, len(x))
		for key, val := range x {
			res[key] = normalize(val)
		}
		return res
	case map[any]any:
		res := make(Object, len(x))
		for key, val := range x {
			res[fmt.Sprint(key)] = normalize(val)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, val := range x {
			res[i] = normalize(val)
		}
		return res
	case []map[string]any:
		res := make([]any, len(x))
		for i, val := range x {
			res[i] = normalize(val)
		}
		return res
	default:
		return v
	}
}
