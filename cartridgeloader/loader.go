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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
)

// Error patterns returned by the cartridgeloader package.
const (
	LoadError     = "cartridgeloader: %v"
	NotCartridge  = "cartridgeloader: %s is sound data"
	UnexpectedSum = "cartridgeloader: unexpected hash value"
)

// Loader is used to specify the data to attach to the board.
type Loader struct {
	// filename of the data to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte

	// the data is a WAV or MP3 file and is intended for the cassette
	IsSoundData bool
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".ROM", ".BIN", ".CAR", ".WAV", ".MP3"}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// Filenames with the extension ".WAV" or ".MP3" set the IsSoundData field.
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".WAV", ".MP3":
		cl.IsSoundData = true
	}

	return cl
}

// ShortName returns a shortened version of the filename.
func (cl Loader) ShortName() string {
	name := filepath.Base(cl.Filename)
	return strings.TrimSuffix(name, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data. Filenames with a valid URL scheme will use that method to
// load the data.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedSum)
	}

	cl.Hash = hash

	return nil
}

// Cartridge creates a cartridge from the loaded data. Load() is called if
// required.
func (cl *Loader) Cartridge() (*memory.Cartridge, error) {
	if cl.IsSoundData {
		return nil, curated.Errorf(NotCartridge, cl.ShortName())
	}
	if err := cl.Load(); err != nil {
		return nil, err
	}
	cart, err := memory.NewCartridge(cl.Data)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	return cart, nil
}
