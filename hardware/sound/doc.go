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

// Package sound generates the beeper tone. The CHIP-8 machine has a single
// sound: a tone that plays for as long as the sound timer is non-zero.
//
// The SoundGenerator runs two loops in tandem. The scheduler watches the
// sound timer and decides when the tone starts and stops; the synthesis
// loop produces the actual samples, a 320Hz sine wave, and passes them to
// whatever mixers are attached. Mixers are how the tone reaches the
// outside world. The sdlaudio package queues samples to the host audio
// device and the wavwriter package records them to disk.
//
// Pacing comes from the mixers themselves. A real time mixer blocks in its
// Queue function once it has buffered enough, throttling the synthesis
// loop to the sample rate.
package sound
