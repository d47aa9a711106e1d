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

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8bit/cartridgeloader"
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestSoundData(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NewLoader("tape.wav").IsSoundData, true)
	test.ExpectEquality(t, cartridgeloader.NewLoader("tape.Mp3").IsSoundData, true)
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.rom").IsSoundData, false)
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/game.rom").ShortName(), "game")

	cl := cartridgeloader.NewLoader("tape.wav")
	_, err := cl.Cartridge()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotCartridge))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x01, 0x02}, 0o644))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), 3)
	test.ExpectEquality(t, cl.Hash, "0c7a623fd2bbc05b06423be359e4021d36e721ad")

	cart, err := cl.Cartridge()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Size(), 3)
	test.ExpectEquality(t, cart.Hash, cl.Hash)

	// a hash mismatch is an error
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.UnexpectedSum))
	test.ExpectEquality(t, cl.HasLoaded(), false)

	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"))
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.rom" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte{0xc3, 0x00, 0x00})
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/game.rom")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 3)

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.rom")
	test.ExpectFailure(t, cl.Load())
}
