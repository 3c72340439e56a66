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

package sdldisplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexkey/gopher8/gui"
	"github.com/hexkey/gopher8/logger"
)

// the traditional mapping of the hexadecimal keypad onto the left hand side
// of a modern keyboard:
//
//	1 2 3 C         1 2 3 4
//	4 5 6 D   -->   Q W E R
//	7 8 9 E         A S D F
//	A 0 B F         Z X C V
var keypadKeys = map[string]int{
	"X": 0x00,
	"1": 0x01,
	"2": 0x02,
	"3": 0x03,
	"Q": 0x04,
	"W": 0x05,
	"E": 0x06,
	"A": 0x07,
	"S": 0x08,
	"D": 0x09,
	"Z": 0x0a,
	"C": 0x0b,
	"4": 0x0c,
	"R": 0x0d,
	"F": 0x0e,
	"V": 0x0f,
}

// Service the SDL event queue and repaint the window. Keypad keys are applied
// to the emulated keypad directly; everything else is forwarded over the
// event channel.
//
// Pauses for up to one frame, pacing the loop that calls it. MUST ONLY be
// called from the main goroutine.
func (scr *Display) Service() {
	// loop until there are no more events to retrieve. servicing only one
	// event per call is not enough, queued events would take one frame or
	// longer to resolve
	done := false
	for !done {
		// wait for new events, timing out straight away if there are none
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.forward(gui.EventWindowClose{})

		case *sdl.KeyboardEvent:
			if ev.Repeat == 0 {
				switch ev.Type {
				case sdl.KEYDOWN:
					scr.handleKey(sdl.GetKeyName(ev.Keysym.Sym), true)
				case sdl.KEYUP:
					scr.handleKey(sdl.GetKeyName(ev.Keysym.Sym), false)
				}
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and the event
			// queue is empty
			done = true
		}
	}

	scr.lmtr.wait()

	if scr.emuScreen.Modified() {
		err := scr.render()
		if err != nil {
			logger.Logf("sdldisplay", "%v", err)
		}
	}
}

// handleKey applies a key transition to the emulated keypad, or forwards it
// if the key is not part of the keypad mapping.
func (scr *Display) handleKey(key string, down bool) {
	if id, ok := keypadKeys[key]; ok {
		scr.emuKeypad.SetKey(id, down)
		return
	}

	scr.forward(gui.EventKeyboard{Key: key, Down: down})
}

// forward an event over the event channel without ever blocking the main
// goroutine.
func (scr *Display) forward(ev gui.Event) {
	if scr.eventChannel == nil {
		return
	}

	select {
	case scr.eventChannel <- ev:
	default:
		logger.Logf("sdldisplay", "dropped gui event (%T)", ev)
	}
}
