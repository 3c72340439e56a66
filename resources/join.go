// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the base directory for all resources. if a directory of this name exists in
// the current working directory it is used in preference to the user's
// config directory.
const baseResourceDir = ".gopher8"

// JoinPath prepends the supplied path with an OS specific base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	b := basePath()
	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

// basePath returns baseResourceDir unadorned if it can be found in the
// current directory. otherwise the user's config directory is prepended.
// having the resource directory close to hand is convenient during
// development but a released binary should use the place the end-user
// expects.
func basePath() string {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourceDir
	}
	return filepath.Join(home, baseResourceDir[1:])
}
