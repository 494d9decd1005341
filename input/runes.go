// This file is part of Framepoll.
//
// Framepoll is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepoll is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepoll.  If not, see <https://www.gnu.org/licenses/>.

package input

import "unicode"

// the keys of a US keyboard layout that produce a character. letters are
// handled separately
var runeKeys = map[rune]int{
	'1': Key1, '!': Key1,
	'2': Key2, '@': Key2,
	'3': Key3, '#': Key3,
	'4': Key4, '$': Key4,
	'5': Key5, '%': Key5,
	'6': Key6, '^': Key6,
	'7': Key7, '&': Key7,
	'8': Key8, '*': Key8,
	'9': Key9, '(': Key9,
	'0': Key0, ')': Key0,
	'-': KeyMinus, '_': KeyMinus,
	'=': KeyEquals, '+': KeyEquals,
	'[': KeyLBracket, '{': KeyLBracket,
	']': KeyRBracket, '}': KeyRBracket,
	';': KeySemicolon, ':': KeySemicolon,
	'\'': KeyApostrophe, '"': KeyApostrophe,
	'`': KeyGrave, '~': KeyGrave,
	'\\': KeyBackslash, '|': KeyBackslash,
	',': KeyComma, '<': KeyComma,
	'.': KeyPeriod, '>': KeyPeriod,
	'/': KeySlash, '?': KeySlash,
	' ':  KeySpace,
	'\t': KeyTab,
	'\r': KeyReturn,
	'\n': KeyReturn,
	'\b': KeyBack,
	0x1b: KeyEscape,
}

var letterKeys = [26]int{
	KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
	KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
}

// RuneKey returns the key that produces the character on a US keyboard
// layout. Useful for sources that only receive characters, such as a
// terminal.
func RuneKey(r rune) (int, bool) {
	if r < unicode.MaxASCII {
		l := unicode.ToLower(r)
		if l >= 'a' && l <= 'z' {
			return letterKeys[l-'a'], true
		}
	}
	k, ok := runeKeys[r]
	return k, ok
}
