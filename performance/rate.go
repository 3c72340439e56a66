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

package performance

// CalcRate takes the number of instructions executed and duration (in
// seconds) and returns instructions-per-second and the accuracy of that value
// as a percentage of the requested frequency. Accuracy is zero when the
// frequency is zero, an unpaced machine having no target to compare against.
func CalcRate(numCycles uint64, frequency int, duration float64) (rate float64, accuracy float64) {
	rate = float64(numCycles) / duration
	if frequency > 0 {
		accuracy = 100 * rate / float64(frequency)
	}
	return rate, accuracy
}
