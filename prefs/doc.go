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

// Package prefs facilitates the setting and storage of preference values.
//
// Preference values are stored in instances of the Bool, String, Int, Float
// or Generic types. These types can be used as live values and read safely
// from concurrent goroutines.
//
// The Disk type groups preference values together and handles loading and
// saving to a single prefs file. Several Disk instances can point to the same
// file; each instance only ever touches the keys that have been added to it.
//
// Values can also be supplied on the command line with
// PushCommandLineStack(). Command line values take precedence over values
// stored on disk and are applied during Disk.Load().
package prefs
