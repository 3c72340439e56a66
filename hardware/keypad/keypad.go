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

package keypad

import (
	"context"
	"sync"
	"time"

	"github.com/hexkey/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// NoKey is returned by WaitForChange() when the wait expires before any key
// changes state.
const NoKey = -1

// OneWaiter is returned when WaitForChange() is called while another wait is
// already in progress. Only one waiter is supported.
const OneWaiter = "keypad: only one waiter supported"

// a single key state transition.
type change struct {
	key     int
	pressed bool
}

// Keypad is the sixteen key hexadecimal keypad of the CHIP-8 machine. The
// input collaborator calls SetKey() on every physical key transition; the
// CPU reads key state with IsPressed() and blocks on WaitForChange() for the
// wait-key instruction.
type Keypad struct {
	crit sync.Mutex
	keys [NumKeys]bool

	// the channel belonging to the single registered waiter. nil when
	// nobody is waiting. capacity one and written to without blocking, so
	// SetKey never stalls the input thread; the first unconsumed change
	// wins.
	waiter chan change
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// IsPressed returns the current status of a key. Keys outside of the keypad
// are not an error; they are simply never pressed.
func (pad *Keypad) IsPressed(key int) bool {
	if key < 0 || key >= NumKeys {
		return false
	}

	pad.crit.Lock()
	defer pad.crit.Unlock()

	return pad.keys[key]
}

// SetKey records the status of a key. If the status has actually changed the
// pending waiter, if there is one, is woken with the details of the change.
// Keys outside of the keypad are ignored.
func (pad *Keypad) SetKey(key int, pressed bool) {
	if key < 0 || key >= NumKeys {
		return
	}

	pad.crit.Lock()
	defer pad.crit.Unlock()

	if pad.keys[key] == pressed {
		return
	}
	pad.keys[key] = pressed

	if pad.waiter != nil {
		select {
		case pad.waiter <- change{key: key, pressed: pressed}:
		default:
		}
	}
}

// WaitForChange blocks until a key changes state, returning the key that
// changed. With releaseOnly, changes caused by a key press are waited
// through; only a key release ends the wait.
//
// A timeout greater than zero limits the wait, with NoKey returned on
// expiry. A timeout of zero or less means no limit.
//
// The only error conditions are cancellation of the context, and a call
// arriving while another wait is in progress.
func (pad *Keypad) WaitForChange(ctx context.Context, timeout time.Duration, releaseOnly bool) (int, error) {
	pad.crit.Lock()
	if pad.waiter != nil {
		pad.crit.Unlock()
		return NoKey, curated.Errorf(OneWaiter)
	}
	w := make(chan change, 1)
	pad.waiter = w
	pad.crit.Unlock()

	defer func() {
		pad.crit.Lock()
		pad.waiter = nil
		pad.crit.Unlock()
	}()

	var expiry <-chan time.Time
	if timeout > 0 {
		tck := time.NewTimer(timeout)
		defer tck.Stop()
		expiry = tck.C
	}

	for {
		select {
		case ch := <-w:
			// a press is not what we are waiting for in releaseOnly
			// mode. block again
			if releaseOnly && ch.pressed {
				continue
			}
			return ch.key, nil
		case <-expiry:
			return NoKey, nil
		case <-ctx.Done():
			return NoKey, ctx.Err()
		}
	}
}
