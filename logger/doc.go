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

// Package logger is the central log repository for Gopher8. There is no
// provision for individual loggers, only the central logger, accessed and
// managed through the package level functions.
//
// New log entries are made with the Log() and Logf() functions. Each entry is
// tagged with a string identifying the source of the entry. Repeated entries
// with the same tag and detail are coalesced into a single entry with a
// repeat count.
//
// By default log entries are simply stored and can be retrieved with the
// Write() and Tail() functions. The SetEcho() function directs new entries to
// an io.Writer as they arrive, which is how the -log option of the run and
// play modes is implemented.
package logger
