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

package drawer

import (
	"path/filepath"

	"seehuhn.de/go/label/config"
)

// KeyBaseDir is the optional argument which gives the directory for
// relative file names.
const KeyBaseDir = "base-dir"

// ResolvePath reads a file name from args.  Relative names are resolved
// against the "base-dir" argument, if present, and otherwise against the
// working directory.
func ResolvePath(args config.Object, key string) (string, error) {
	name, err := args.String(key)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(name) || !args.Has(KeyBaseDir) {
		return filepath.Clean(name), nil
	}
	dir, err := args.String(KeyBaseDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
