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

// Package gui defines the event types sent from a front end to the
// supervising emulation loop.
//
// Key transitions that belong to the emulated keypad are not forwarded as
// events. The front end applies those directly to the keypad so that input
// keeps working even when the emulation is blocked inside the wait-key
// instruction.
package gui

// GUI is the interface implemented by graphical front ends.
type GUI interface {
	// SetEventChannel sets the channel to which window events are forwarded.
	// Should be called before the emulation starts running.
	SetEventChannel(chan Event)
}

// Event represents the different kinds of event that can be sent over an
// event channel.
type Event interface{}

// EventWindowClose is sent when the user closes the window.
type EventWindowClose struct{}

// EventKeyboard is sent for key transitions that are not part of the
// emulated keypad.
type EventKeyboard struct {
	Key  string
	Down bool
}
