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
	"fmt"
	"slices"
	"time"

	"github.com/jetsetilly/framepoll/userinput"
)

// default values for the tunables. these are also the default values of the
// corresponding preferences.
const (
	DefaultDoubleClickInterval = 250 * time.Millisecond
	DefaultClickTolerance      = 5
	DefaultRepeatInitial       = 500 * time.Millisecond
	DefaultRepeatInterval      = 100 * time.Millisecond
)

// Input converts the state of a userinput.Source into events that are
// delivered to listeners. The Poll() function should be called once per
// frame.
//
// Input is not safe for concurrent use. All functions, including the
// functions of listeners called during Poll(), must be called from the same
// goroutine.
type Input struct {
	src   userinput.Source
	clock Clock

	paused bool

	// focus state at the end of the previous poll
	focused bool

	// the view height given to the most recent call to Poll()
	height int

	transform Transform

	keyListeners        chain[KeyListener]
	mouseListeners      chain[MouseListener]
	controllerListeners chain[ControllerListener]

	// set by ConsumeEvent() and reset before each event is dispatched
	consumed bool

	keys           [KeyCount]keyLatch
	keyRepeat      bool
	repeatInitial  time.Duration
	repeatInterval time.Duration

	buttons          [MaxMouseButtons]buttonLatch
	clickTolerance   int
	doubleClickDelay time.Duration
	click            pendingClick

	lastMouseX int
	lastMouseY int
	wheel      int

	controllersInited bool
	controllers       []controller
}

// NewInput is the preferred method of initialisation for the Input type. The
// height argument is the height of the view, which is needed to convert the
// pointer position before the first call to Poll().
func NewInput(src userinput.Source, height int) *Input {
	inp := &Input{
		src:              src,
		clock:            systemClock{},
		focused:          src.Focused(),
		height:           height,
		transform:        IdentityTransform,
		repeatInitial:    DefaultRepeatInitial,
		repeatInterval:   DefaultRepeatInterval,
		clickTolerance:   DefaultClickTolerance,
		doubleClickDelay: DefaultDoubleClickInterval,
	}
	inp.lastMouseX = inp.MouseX()
	inp.lastMouseY = inp.MouseY()
	return inp
}

// SetClock changes the source of time. Useful for testing.
func (inp *Input) SetClock(clk Clock) {
	inp.clock = clk
}

// Poll the source and deliver events to listeners. Should be called once per
// frame. Listeners must not call Poll().
func (inp *Input) Poll(width int, height int) {
	// key transitions are always requested first. see userinput.Source
	keys := inp.src.KeyTransitions()
	pointer := inp.src.PointerTransitions()

	if inp.paused {
		inp.clearLatches()
		inp.discard(keys, pointer)
		inp.clearPressPositions()
		return
	}

	focused := inp.src.Focused()
	if !focused {
		inp.clearLatches()
	} else if !inp.focused {
		inp.resync(keys, pointer)
	}

	inp.keyListeners.flush()
	inp.mouseListeners.flush()
	inp.controllerListeners.flush()

	now := inp.clock.Now()
	inp.click.expire(now)

	inp.height = height

	for _, r := range inp.receivers() {
		r.InputStarted()
	}

	for _, k := range keys {
		inp.keyTransition(now, k)
	}
	for _, p := range pointer {
		inp.pointerTransition(now, p)
	}
	inp.pointerMotion()

	inp.pollControllers()

	if inp.keyRepeat {
		inp.repeat(now)
	}

	for _, r := range inp.receivers() {
		r.InputEnded()
	}

	inp.focused = focused
}

// Pause the delivery of events. Transitions reported by the source while
// paused are discarded.
func (inp *Input) Pause() {
	inp.paused = true
	inp.clearLatches()
}

// Resume the delivery of events.
func (inp *Input) Resume() {
	inp.paused = false
}

// IsPaused returns true if the input system is paused.
func (inp *Input) IsPaused() bool {
	return inp.paused
}

// ConsumeEvent should be called by a listener to prevent the event currently
// being delivered from reaching any further listeners in the same category.
func (inp *Input) ConsumeEvent() {
	inp.consumed = true
}

// clear the one-shot latches of all keys, buttons and controls. held keys
// continue to repeat
func (inp *Input) clearLatches() {
	inp.ClearKeyPressedRecord()
	inp.ClearMousePressedRecord()
	inp.ClearControlPressedRecord()
}

// SetScale sets the scaling of the coordinate transform.
func (inp *Input) SetScale(scaleX float64, scaleY float64) {
	inp.transform.ScaleX = scaleX
	inp.transform.ScaleY = scaleY
}

// SetOffset sets the offset of the coordinate transform.
func (inp *Input) SetOffset(offsetX float64, offsetY float64) {
	inp.transform.OffsetX = offsetX
	inp.transform.OffsetY = offsetY
}

// ResetInputTransform returns the coordinate transform to the identity.
func (inp *Input) ResetInputTransform() {
	inp.transform = IdentityTransform
}

// Transform returns the current coordinate transform.
func (inp *Input) Transform() Transform {
	return inp.transform
}

// SetDoubleClickInterval sets the maximum time between the first and second
// click of a double-click.
func (inp *Input) SetDoubleClickInterval(d time.Duration) {
	inp.doubleClickDelay = d
}

// SetMouseClickTolerance sets the distance in pixels that the pointer can
// move between a press and a release for the release to count as a click.
func (inp *Input) SetMouseClickTolerance(px int) {
	inp.clickTolerance = px
}

// EnableKeyRepeat causes the KeyPressed() function of key listeners to be
// called repeatedly while a key is held.
func (inp *Input) EnableKeyRepeat() {
	inp.keyRepeat = true
}

// DisableKeyRepeat stops key repeat.
func (inp *Input) DisableKeyRepeat() {
	inp.keyRepeat = false
}

// IsKeyRepeatEnabled returns true if key repeat is enabled.
func (inp *Input) IsKeyRepeatEnabled() bool {
	return inp.keyRepeat
}

// SetKeyRepeatTiming sets the delay before the first repeat and the interval
// between repeats. Does not enable key repeat.
func (inp *Input) SetKeyRepeatTiming(initial time.Duration, interval time.Duration) {
	inp.repeatInitial = initial
	inp.repeatInterval = interval
}

func mustNotBeNil(l any) {
	if l == nil {
		panic("input: nil listener")
	}
}

// AddKeyListener adds a listener to the key chain. The listener will receive
// events from the next call to Poll().
func (inp *Input) AddKeyListener(l KeyListener) {
	mustNotBeNil(l)
	inp.keyListeners.add(l)
}

// AddMouseListener adds a listener to the pointer chain. The listener will
// receive events from the next call to Poll().
func (inp *Input) AddMouseListener(l MouseListener) {
	mustNotBeNil(l)
	inp.mouseListeners.add(l)
}

// AddControllerListener adds a listener to the controller chain. The listener
// will receive events from the next call to Poll().
func (inp *Input) AddControllerListener(l ControllerListener) {
	mustNotBeNil(l)
	inp.controllerListeners.add(l)
}

// AddListener adds a listener to all chains.
func (inp *Input) AddListener(l Listener) {
	inp.AddKeyListener(l)
	inp.AddMouseListener(l)
	inp.AddControllerListener(l)
}

// AddPrimaryListener adds a listener to the front of all chains. If the
// listener is already in a chain it is moved to the front.
func (inp *Input) AddPrimaryListener(l Listener) {
	mustNotBeNil(l)
	inp.keyListeners.addPrimary(l)
	inp.mouseListeners.addPrimary(l)
	inp.controllerListeners.addPrimary(l)
}

// RemoveKeyListener removes a listener from the key chain. Removal is
// immediate.
func (inp *Input) RemoveKeyListener(l KeyListener) {
	inp.keyListeners.remove(l)
}

// RemoveMouseListener removes a listener from the pointer chain. Removal is
// immediate.
func (inp *Input) RemoveMouseListener(l MouseListener) {
	inp.mouseListeners.remove(l)
}

// RemoveControllerListener removes a listener from the controller chain.
// Removal is immediate.
func (inp *Input) RemoveControllerListener(l ControllerListener) {
	inp.controllerListeners.remove(l)
}

// RemoveListener removes a listener from all chains.
func (inp *Input) RemoveListener(l Listener) {
	inp.RemoveKeyListener(l)
	inp.RemoveMouseListener(l)
	inp.RemoveControllerListener(l)
}

// RemoveAllKeyListeners empties the key chain.
func (inp *Input) RemoveAllKeyListeners() {
	inp.keyListeners.clear()
}

// RemoveAllMouseListeners empties the pointer chain.
func (inp *Input) RemoveAllMouseListeners() {
	inp.mouseListeners.clear()
}

// RemoveAllControllerListeners empties the controller chain.
func (inp *Input) RemoveAllControllerListeners() {
	inp.controllerListeners.clear()
}

// RemoveAllListeners empties all chains.
func (inp *Input) RemoveAllListeners() {
	inp.RemoveAllKeyListeners()
	inp.RemoveAllMouseListeners()
	inp.RemoveAllControllerListeners()
}

// receivers returns every active listener once, regardless of how many chains
// it is in.
func (inp *Input) receivers() []Receiver {
	var all []Receiver
	add := func(r Receiver) {
		if !slices.Contains(all, r) {
			all = append(all, r)
		}
	}
	for _, l := range inp.keyListeners.active {
		add(l)
	}
	for _, l := range inp.mouseListeners.active {
		add(l)
	}
	for _, l := range inp.controllerListeners.active {
		add(l)
	}
	return all
}

func (inp *Input) String() string {
	s := "active"
	if inp.paused {
		s = "paused"
	}
	return fmt.Sprintf("%s: %d key, %d mouse, %d controller listeners: %d controllers", s,
		len(inp.keyListeners.active), len(inp.mouseListeners.active),
		len(inp.controllerListeners.active), len(inp.controllers))
}
