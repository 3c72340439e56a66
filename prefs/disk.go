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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hexkey/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "gopher8.prefs"

// WarningBoilerPlate is the first line of a prefs file. Files without it are
// rejected on load.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile error is returned when the prefs file does not exist. Callers
// of Load() that are happy with default values can test for it with
// curated.Is() and carry on.
const NoPrefsFile = "prefs: no prefs file (%s)"

// the string that separates a key from its value in the prefs file.
const keySep = " :: "

// Disk represents preference values that are loaded from and saved to disk.
//
// More than one Disk instance can use the same file. Saving through one
// instance preserves the entries owned by the others.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference to list of preferences to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.Contains(key, "\n") {
		return curated.Errorf("prefs: invalid key [%s]", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key [%s]", key)
	}
	dsk.entries[key] = p
	return nil
}

// Load preference values from disk. Values pushed with
// PushCommandLineStack() take precedence over values stored on disk.
//
// If ignoreMissing is true then the absence of the prefs file is not an
// error. Keys in the file that have not been added to this Disk instance are
// left alone.
func (dsk *Disk) Load(ignoreMissing bool) error {
	saved, err := dsk.loadEntries()
	if err != nil {
		if !ignoreMissing || !curated.Is(err, NoPrefsFile) {
			return err
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
			continue
		}
		if v, ok := saved[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	// load the entirety of the existing prefs file so that keys not owned by
	// this instance can be written back out
	saved, err := dsk.loadEntries()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		saved[k] = p.String()
	}

	keys := make([]string, 0, len(saved))
	for k := range saved {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(f, "%s%s%s\n", k, keySep, saved[k])
	}

	return nil
}

// String returns the registered entries and their current values, one per
// line, in key order.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%v\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preferences in this Disk instance to their zero values. The prefs
// file is not touched until the next Save().
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// loadEntries reads every key/value pair in the prefs file, regardless of
// whether the key has been added to this Disk instance.
func (dsk *Disk) loadEntries() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return entries, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file before proceeding
	scanner.Scan()
	if scanner.Text() != WarningBoilerPlate {
		return entries, curated.Errorf("prefs: not a prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			return entries, curated.Errorf("prefs: corrupt prefs file (%s)", dsk.path)
		}
		if isDefunct(s[0]) {
			continue
		}
		entries[s[0]] = s[1]
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf("prefs: %v", err)
	}

	return entries, nil
}
