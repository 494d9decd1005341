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

package command

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/prefs"
)

// DefaultBindingsFile is the default filename of the bindings file. Use
// paths.ResourcePath() to find the full path.
const DefaultBindingsFile = "bindings"

// Write the bindings to io.Writer in the prefs file format. Each line is a
// control and the command it is bound to.
func (p *Provider) Write(w io.Writer) error {
	ent := make(prefs.Entries, len(p.bindings))
	for c, cmd := range p.bindings {
		ent[c.String()] = string(cmd)
	}
	if err := ent.Write(w); err != nil {
		return fmt.Errorf("command: %w", err)
	}
	return nil
}

// Read bindings from io.Reader and add them to the existing bindings. Lines
// that do not describe a control are logged and ignored.
func (p *Provider) Read(r io.Reader) error {
	ent, err := prefs.ReadEntries(r)
	if err != nil {
		return fmt.Errorf("command: %w", err)
	}

	for _, k := range ent.Keys() {
		c, err := ParseControl(k)
		if err != nil {
			logger.Log(logger.Allow, "command", err)
			continue
		}
		if ent[k] == "" {
			logger.Logf(logger.Allow, "command", "no command for %s", k)
			continue
		}
		p.Bind(c, Command(ent[k]))
	}

	return nil
}

// Save bindings to the file at the specified path.
func (p *Provider) Save(pth string) (rerr error) {
	f, err := os.Create(pth)
	if err != nil {
		return fmt.Errorf("command: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("command: %w", err)
		}
	}()

	return p.Write(f)
}

// Load bindings from the file at the specified path. A missing file is not
// an error and leaves the existing bindings unchanged.
func (p *Provider) Load(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("command: %w", err)
	}
	defer f.Close()

	return p.Read(f)
}
