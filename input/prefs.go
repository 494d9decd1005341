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

package input

import (
	"strings"
	"time"

	"github.com/jetsetilly/framepoll/prefs"
)

// Preferences are the tunables of an Input that persist between sessions.
// Changing a value applies it to the Input immediately.
type Preferences struct {
	inp *Input
	dsk *prefs.Disk

	// in milliseconds
	DoubleClick prefs.Int

	// in pixels
	ClickTolerance prefs.Int

	KeyRepeat prefs.Bool

	// in milliseconds
	KeyRepeatInitial  prefs.Int
	KeyRepeatInterval prefs.Int
}

func (p *Preferences) String() string {
	return strings.TrimSuffix(p.dsk.String(), "\n")
}

// NewPreferences creates the preferences for an Input and loads the values
// from the prefs file at the specified path. The file is created if it does
// not exist.
func NewPreferences(inp *Input, pth string) (*Preferences, error) {
	p := &Preferences{inp: inp}

	p.DoubleClick.SetRange(0, 5000)
	p.ClickTolerance.SetRange(0, 100)
	p.KeyRepeatInitial.SetRange(1, 5000)
	p.KeyRepeatInterval.SetRange(1, 5000)

	p.SetDefaults()

	p.DoubleClick.SetHookPost(func(v prefs.Value) error {
		inp.SetDoubleClickInterval(time.Duration(v.(int)) * time.Millisecond)
		return nil
	})
	p.ClickTolerance.SetHookPost(func(v prefs.Value) error {
		inp.SetMouseClickTolerance(v.(int))
		return nil
	})
	p.KeyRepeat.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			inp.EnableKeyRepeat()
		} else {
			inp.DisableKeyRepeat()
		}
		return nil
	})
	p.KeyRepeatInitial.SetHookPost(func(v prefs.Value) error {
		inp.SetKeyRepeatTiming(time.Duration(v.(int))*time.Millisecond, p.repeatInterval())
		return nil
	})
	p.KeyRepeatInterval.SetHookPost(func(v prefs.Value) error {
		inp.SetKeyRepeatTiming(p.repeatInitial(), time.Duration(v.(int))*time.Millisecond)
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("input.doubleclick", &p.DoubleClick)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.clicktolerance", &p.ClickTolerance)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.keyrepeat", &p.KeyRepeat)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.keyrepeat.initial", &p.KeyRepeatInitial)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.keyrepeat.interval", &p.KeyRepeatInterval)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) repeatInitial() time.Duration {
	return time.Duration(p.KeyRepeatInitial.Get().(int)) * time.Millisecond
}

func (p *Preferences) repeatInterval() time.Duration {
	return time.Duration(p.KeyRepeatInterval.Get().(int)) * time.Millisecond
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.DoubleClick.Set(int(DefaultDoubleClickInterval / time.Millisecond))
	p.ClickTolerance.Set(DefaultClickTolerance)
	p.KeyRepeat.Set(false)
	p.KeyRepeatInitial.Set(int(DefaultRepeatInitial / time.Millisecond))
	p.KeyRepeatInterval.Set(int(DefaultRepeatInterval / time.Millisecond))
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
