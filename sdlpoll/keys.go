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

package sdlpoll

import (
	"github.com/jetsetilly/framepoll/input"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodes maps SDL scancodes to input key codes. scancodes are used rather
// than keycodes because they identify the physical key, which is what the
// input key codes also do.
var scancodes = map[sdl.Scancode]int{
	sdl.SCANCODE_ESCAPE:       input.KeyEscape,
	sdl.SCANCODE_1:            input.Key1,
	sdl.SCANCODE_2:            input.Key2,
	sdl.SCANCODE_3:            input.Key3,
	sdl.SCANCODE_4:            input.Key4,
	sdl.SCANCODE_5:            input.Key5,
	sdl.SCANCODE_6:            input.Key6,
	sdl.SCANCODE_7:            input.Key7,
	sdl.SCANCODE_8:            input.Key8,
	sdl.SCANCODE_9:            input.Key9,
	sdl.SCANCODE_0:            input.Key0,
	sdl.SCANCODE_MINUS:        input.KeyMinus,
	sdl.SCANCODE_EQUALS:       input.KeyEquals,
	sdl.SCANCODE_BACKSPACE:    input.KeyBack,
	sdl.SCANCODE_TAB:          input.KeyTab,
	sdl.SCANCODE_Q:            input.KeyQ,
	sdl.SCANCODE_W:            input.KeyW,
	sdl.SCANCODE_E:            input.KeyE,
	sdl.SCANCODE_R:            input.KeyR,
	sdl.SCANCODE_T:            input.KeyT,
	sdl.SCANCODE_Y:            input.KeyY,
	sdl.SCANCODE_U:            input.KeyU,
	sdl.SCANCODE_I:            input.KeyI,
	sdl.SCANCODE_O:            input.KeyO,
	sdl.SCANCODE_P:            input.KeyP,
	sdl.SCANCODE_LEFTBRACKET:  input.KeyLBracket,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRBracket,
	sdl.SCANCODE_RETURN:       input.KeyReturn,
	sdl.SCANCODE_LCTRL:        input.KeyLControl,
	sdl.SCANCODE_A:            input.KeyA,
	sdl.SCANCODE_S:            input.KeyS,
	sdl.SCANCODE_D:            input.KeyD,
	sdl.SCANCODE_F:            input.KeyF,
	sdl.SCANCODE_G:            input.KeyG,
	sdl.SCANCODE_H:            input.KeyH,
	sdl.SCANCODE_J:            input.KeyJ,
	sdl.SCANCODE_K:            input.KeyK,
	sdl.SCANCODE_L:            input.KeyL,
	sdl.SCANCODE_SEMICOLON:    input.KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:   input.KeyApostrophe,
	sdl.SCANCODE_GRAVE:        input.KeyGrave,
	sdl.SCANCODE_LSHIFT:       input.KeyLShift,
	sdl.SCANCODE_BACKSLASH:    input.KeyBackslash,
	sdl.SCANCODE_Z:            input.KeyZ,
	sdl.SCANCODE_X:            input.KeyX,
	sdl.SCANCODE_C:            input.KeyC,
	sdl.SCANCODE_V:            input.KeyV,
	sdl.SCANCODE_B:            input.KeyB,
	sdl.SCANCODE_N:            input.KeyN,
	sdl.SCANCODE_M:            input.KeyM,
	sdl.SCANCODE_COMMA:        input.KeyComma,
	sdl.SCANCODE_PERIOD:       input.KeyPeriod,
	sdl.SCANCODE_SLASH:        input.KeySlash,
	sdl.SCANCODE_RSHIFT:       input.KeyRShift,
	sdl.SCANCODE_KP_MULTIPLY:  input.KeyMultiply,
	sdl.SCANCODE_LALT:         input.KeyLMenu,
	sdl.SCANCODE_SPACE:        input.KeySpace,
	sdl.SCANCODE_CAPSLOCK:     input.KeyCapital,
	sdl.SCANCODE_F1:           input.KeyF1,
	sdl.SCANCODE_F2:           input.KeyF2,
	sdl.SCANCODE_F3:           input.KeyF3,
	sdl.SCANCODE_F4:           input.KeyF4,
	sdl.SCANCODE_F5:           input.KeyF5,
	sdl.SCANCODE_F6:           input.KeyF6,
	sdl.SCANCODE_F7:           input.KeyF7,
	sdl.SCANCODE_F8:           input.KeyF8,
	sdl.SCANCODE_F9:           input.KeyF9,
	sdl.SCANCODE_F10:          input.KeyF10,
	sdl.SCANCODE_NUMLOCKCLEAR: input.KeyNumLock,
	sdl.SCANCODE_SCROLLLOCK:   input.KeyScroll,
	sdl.SCANCODE_KP_7:         input.KeyNumpad7,
	sdl.SCANCODE_KP_8:         input.KeyNumpad8,
	sdl.SCANCODE_KP_9:         input.KeyNumpad9,
	sdl.SCANCODE_KP_MINUS:     input.KeySubtract,
	sdl.SCANCODE_KP_4:         input.KeyNumpad4,
	sdl.SCANCODE_KP_5:         input.KeyNumpad5,
	sdl.SCANCODE_KP_6:         input.KeyNumpad6,
	sdl.SCANCODE_KP_PLUS:      input.KeyAdd,
	sdl.SCANCODE_KP_1:         input.KeyNumpad1,
	sdl.SCANCODE_KP_2:         input.KeyNumpad2,
	sdl.SCANCODE_KP_3:         input.KeyNumpad3,
	sdl.SCANCODE_KP_0:         input.KeyNumpad0,
	sdl.SCANCODE_KP_PERIOD:    input.KeyDecimal,
	sdl.SCANCODE_F11:          input.KeyF11,
	sdl.SCANCODE_F12:          input.KeyF12,
	sdl.SCANCODE_F13:          input.KeyF13,
	sdl.SCANCODE_F14:          input.KeyF14,
	sdl.SCANCODE_F15:          input.KeyF15,
	sdl.SCANCODE_KP_EQUALS:    input.KeyNumpadEquals,
	sdl.SCANCODE_STOP:         input.KeyStop,
	sdl.SCANCODE_KP_ENTER:     input.KeyNumpadEnter,
	sdl.SCANCODE_RCTRL:        input.KeyRControl,
	sdl.SCANCODE_KP_COMMA:     input.KeyNumpadComma,
	sdl.SCANCODE_KP_DIVIDE:    input.KeyDivide,
	sdl.SCANCODE_PRINTSCREEN:  input.KeySysRq,
	sdl.SCANCODE_RALT:         input.KeyRMenu,
	sdl.SCANCODE_PAUSE:        input.KeyPause,
	sdl.SCANCODE_HOME:         input.KeyHome,
	sdl.SCANCODE_UP:           input.KeyUp,
	sdl.SCANCODE_PAGEUP:       input.KeyPrior,
	sdl.SCANCODE_LEFT:         input.KeyLeft,
	sdl.SCANCODE_RIGHT:        input.KeyRight,
	sdl.SCANCODE_END:          input.KeyEnd,
	sdl.SCANCODE_DOWN:         input.KeyDown,
	sdl.SCANCODE_PAGEDOWN:     input.KeyNext,
	sdl.SCANCODE_INSERT:       input.KeyInsert,
	sdl.SCANCODE_DELETE:       input.KeyDelete,
	sdl.SCANCODE_LGUI:         input.KeyLWin,
	sdl.SCANCODE_RGUI:         input.KeyRWin,
	sdl.SCANCODE_APPLICATION:  input.KeyApps,
	sdl.SCANCODE_POWER:        input.KeyPower,
	sdl.SCANCODE_SLEEP:        input.KeySleep,
}

// keyCode returns the input key code for the scancode. scancodes with no
// equivalent are returned as KeyUnknown.
func keyCode(sc sdl.Scancode) int {
	if k, ok := scancodes[sc]; ok {
		return k
	}
	return input.KeyUnknown
}

// button returns the input mouse button for the SDL mouse button. the
// buttons beyond the middle button are numbered in order
func button(b uint8) int {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.MouseLeftButton
	case sdl.BUTTON_RIGHT:
		return input.MouseRightButton
	case sdl.BUTTON_MIDDLE:
		return input.MouseMiddleButton
	}
	return int(b) - 1
}
