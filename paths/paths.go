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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigEnv is the environment variable that, when set, replaces the base
// path chosen by the build.
const ConfigEnv = "FRAMEPOLL_CONFIG"

// ResourcePath returns the path to a file in the subPth directory of the
// base path. The subPth directory is created if it does not exist. Either
// argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base := os.Getenv(ConfigEnv)
	if base == "" {
		var err error
		base, err = basePath()
		if err != nil {
			return "", fmt.Errorf("paths: %w", err)
		}
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(dir, file), nil
}
