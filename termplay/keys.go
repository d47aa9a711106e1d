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

package termplay

// escape sequences and the key name they produce. key names follow the
// convention used by the userinput package
var escapeSequences = map[string]string{
	"[A":   "Up",
	"[B":   "Down",
	"[C":   "Right",
	"[D":   "Left",
	"OA":   "Up",
	"OB":   "Down",
	"OC":   "Right",
	"OD":   "Left",
	"OQ":   "F2",
	"OR":   "F3",
	"OS":   "F4",
	"[12~": "F2",
	"[13~": "F3",
	"[14~": "F4",
	"[15~": "F5",
	"[18~": "F7",
}

// the key name used to signify that the user wants to quit
const quitKey = "Quit"

// parseKeys converts the bytes read from the terminal into a list of key
// names. unrecognised bytes are ignored.
func parseKeys(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		switch c := b[i]; c {
		case 0x1b:
			// a lone escape is the escape key
			if i == len(b)-1 {
				keys = append(keys, "Escape")
				continue
			}

			// the sequence ends with the first letter or tilde after the
			// introducer
			j := i + 2
			for j < len(b) && !isFinal(b[j]) {
				j++
			}
			if j >= len(b) {
				return keys
			}
			if k, ok := escapeSequences[string(b[i+1:j+1])]; ok {
				keys = append(keys, k)
			}
			i = j

		case ' ':
			keys = append(keys, "Space")
		case 0x7f, 0x08:
			keys = append(keys, "Backspace")
		case 'q', 'Q':
			keys = append(keys, quitKey)
		}
	}

	return keys
}

func isFinal(c byte) bool {
	return c == '~' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
