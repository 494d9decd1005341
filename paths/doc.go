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

// Package paths contains functions to prepare paths to framepoll resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	d, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() depends on how the program was built. For
// development builds the base path is ".framepoll" in the current directory.
// For release builds (built with the release tag) the base path is
// "framepoll" in the user's config directory. The package uses
// os.UserConfigDir() from the standard library for this.
//
// In the example above, on a modern Linux system with a release build, the
// path returned will be:
//
//	/home/user/.config/framepoll/preferences
//
// The base path for any build can be replaced by setting the FRAMEPOLL_CONFIG
// environment variable.
//
// Directories are created as required but the resource file itself is not.
package paths
