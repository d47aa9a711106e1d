// This file is part of Gopher8bit.
//
// Gopher8bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8bit.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources.
const baseResourcePath = ".gopher8bit"

// the directory name used when the base path is in the user's config directory.
const gopherConfigDir = "gopher8bit"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The last element
// of the resource list is treated as a filename. Every other element is a
// directory and will be created if it does not exist.
//
// Empty strings in the resource list are ignored.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}

	// the directory containing the resource
	var dir string
	if len(resource) > 0 && resource[len(resource)-1] != "" {
		dir = filepath.Join(p[:len(p)-1]...)
	} else {
		dir = filepath.Join(p...)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(p...), nil
}

// getBasePath returns baseResourcePath if it exists in the current directory.
// otherwise it returns the gopherConfigDir in the user's config directory.
func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, gopherConfigDir), nil
}
