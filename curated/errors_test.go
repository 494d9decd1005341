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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/test"
)

const testPattern = "controllers: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("playback: %s", "bad line")
	test.ExpectEquality(t, e.Error(), "playback: bad line")

	// wrapping an error with the same context does not repeat the context
	f := curated.Errorf("playback: %v", e)
	test.ExpectEquality(t, f.Error(), "playback: bad line")

	// non-adjacent duplicates are left alone
	g := curated.Errorf("a: b: %v", curated.Errorf("a: c"))
	test.ExpectEquality(t, g.Error(), "a: b: a: c")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, "no joystick support")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.Has(e, testPattern))

	f := curated.Errorf("input: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("recorder: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
}
