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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jetsetilly/framepoll/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
// Use paths.ResourcePath() to find the full path.
const DefaultPrefsFile = "preferences"

// NoPrefsFile is returned by Disk.Load() when the file does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k].String()))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	ent := make(Entries, len(dsk.entries))
	for k := range dsk.entries {
		ent[k] = ""
	}
	return ent.Keys()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for disk")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if !ValidKey(key) {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if the key has been added to the disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the entries in the file. a missing file is not an error and results in
// an empty Entries
func (dsk *Disk) read() (Entries, bool, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(Entries), false, nil
		}
		return nil, false, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	ent, err := ReadEntries(f)
	if err != nil {
		return nil, true, err
	}
	return ent, true, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	ent, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		ent[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	err = ent.Write(f)
	if err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the file
// does not exist then the current values are saved and no error is returned.
// If saveOnFirstUse is false and the file does not exist then a NoPrefsFile
// error is returned.
//
// Values on the top of the command line stack override the values from disk.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	ent, exists, err := dsk.read()
	if err != nil {
		return err
	}

	if !exists && saveOnFirstUse {
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			continue
		}

		if v, ok := ent[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	if !exists && !saveOnFirstUse {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
