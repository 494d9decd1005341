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
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// WarningBoilerPlate is the first line of every file in the prefs format.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value on each line.
const KeySep = " :: "

// Entries are the key/value pairs of a file in the prefs format.
type Entries map[string]string

// ReadEntries parses a file in the prefs format. Lines that are not in the
// expected format are ignored.
func ReadEntries(r io.Reader) (Entries, error) {
	ent := make(Entries)

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		l := scanner.Text()

		if first {
			first = false
			if l == WarningBoilerPlate {
				continue
			}
		}

		k, v, ok := strings.Cut(l, KeySep)
		if !ok {
			continue
		}
		ent[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return ent, nil
}

// Keys returns the entry keys in sorted order.
func (ent Entries) Keys() []string {
	keys := make([]string, 0, len(ent))
	for k := range ent {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Write entries to io.Writer in the prefs format.
func (ent Entries) Write(w io.Writer) error {
	b := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(b, WarningBoilerPlate); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, k := range ent.Keys() {
		if _, err := fmt.Fprintf(b, "%s%s%s\n", k, KeySep, ent[k]); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	if err := b.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// ValidKey returns false if the key cannot be represented in the prefs
// format.
func ValidKey(key string) bool {
	if strings.TrimSpace(key) != key || key == "" {
		return false
	}
	return !strings.Contains(key, KeySep) && !strings.ContainsAny(key, "\n\r")
}
