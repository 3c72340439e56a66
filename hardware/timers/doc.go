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

// Package timers implements the delay and sound timers. Both count down at
// sixty ticks per second from whatever value the CPU last stored.
//
// Rather than decrementing a counter on a background goroutine, each timer
// is represented by the time at which it will reach zero. Reads derive the
// count from the distance to that moment. The counts are therefore exact at
// any instant and the package needs no goroutine of its own.
//
// The sound timer additionally publishes a wake on a small channel whenever
// it is set, which is how the sound scheduler learns that the beeper should
// start without polling. See the sound package.
package timers
