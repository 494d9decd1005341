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

// Package prefs facilitates the storage of preferential values in the
// framepoll system. It is intended to be used to store tunables that the user
// may want to change, and which should persist between sessions.
//
// A preference value is one of the types defined in this package (Bool, Int,
// String). Values can be associated with a key and added to a Disk instance.
// The Disk instance is used to save and load values to and from the file
// system.
//
//	var doubleClick prefs.Int
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("input.doubleclick", &doubleClick)
//	err = dsk.Load(true)
//
// Hooks can be attached to a value with SetHookPre() and SetHookPost(). The
// post hook is the usual way of applying a change to a value to the system
// that uses it.
//
// The file format is simple. The first line of the file is the
// WarningBoilerPlate. Each subsequent line is a key and a value separated by
// KeySep. Entries are sorted by key. Many Disk instances can share the same
// file; saving one instance does not clobber the entries of another.
//
// The ReadEntries() function and the Entries type expose the file format
// directly, for packages with a dynamic set of keys.
//
// Preference values can also be set for a single session from the command
// line with PushCommandLineStack(). Values on the top of the stack override
// the values loaded from disk.
package prefs
