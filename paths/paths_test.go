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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8bit/paths"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	// creating the base directory in the current working directory means
	// ResourcePath() will use it in preference to the user's config directory
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gopher8bit", 0700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8bit", "foo", "bar", "baz"))

	// the directory part of the resource has been created
	_, err = os.Stat(filepath.Join(".gopher8bit", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8bit", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8bit", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8bit")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", "  game ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_game_"))

	fn = paths.UniqueFilename("snapshot", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_2"))
}
