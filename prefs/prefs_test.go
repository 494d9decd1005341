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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/prefs"
	"github.com/jetsetilly/framepoll/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// types other than bool and string are rejected
	test.ExpectFailure(t, v.Set(1))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some failure
	// conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestIntRange(t *testing.T) {
	var v prefs.Int
	v.SetRange(0, 1000)

	test.ExpectSuccess(t, v.Set(250))
	err := v.Set(-1)
	test.ExpectSuccess(t, curated.Is(err, prefs.OutOfRange))
	test.ExpectEquality(t, v.Get().(int), 250)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var applied int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) == 13 {
			return fmt.Errorf("unlucky")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		applied = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, applied, 100)

	// pre hook prevents the value from changing
	test.ExpectFailure(t, v.Set(13))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, applied, 100)
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("input.doubleclick", &v))
	test.ExpectSuccess(t, dsk.Add("input.keyrepeat", &b))

	// no file and no saving on first use
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, v.Set(300))
	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 300)
	test.ExpectEquality(t, b.Get().(bool), true)

	// command line overrides the value on disk
	prefs.PushCommandLineStack("input.doubleclick::400")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 400)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestSaveOnFirstUse(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, v.Set(250))
	test.ExpectSuccess(t, dsk.Add("input.doubleclick", &v))

	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "input.doubleclick :: 250\n")
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectFailure(t, dsk.Add(" padded", &v))
	test.ExpectSuccess(t, dsk.Add("ok", &v))
	test.ExpectFailure(t, dsk.Add("ok", &v))
	test.ExpectSuccess(t, dsk.HasEntry("ok"))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestEntries(t *testing.T) {
	r := strings.NewReader(fmt.Sprintf("%s\nkey/30 :: quit\nnot an entry\nmouse/0 :: fire :: twice\n", prefs.WarningBoilerPlate))

	ent, err := prefs.ReadEntries(r)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ent), 2)
	test.ExpectEquality(t, ent["key/30"], "quit")

	// only the first separator divides the key from the value
	test.ExpectEquality(t, ent["mouse/0"], "fire :: twice")

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, ent.Write(w))
	test.ExpectSuccess(t, w.Compare(fmt.Sprintf("%s\nkey/30 :: quit\nmouse/0 :: fire :: twice\n", prefs.WarningBoilerPlate)))
}
