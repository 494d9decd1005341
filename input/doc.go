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

// Package input converts the frame-sampled state of the hardware into a
// stream of events delivered to listeners.
//
// The hardware is represented by an implementation of userinput.Source. Each
// frame, the host calls Poll(). The Input drains the key and pointer
// transitions from the source, detects edges, recognises clicks and
// double-clicks, schedules key repeats and samples the game controllers. The
// resulting events are delivered synchronously to the registered listeners
// before Poll() returns.
//
//	inp := input.NewInput(src, height)
//	inp.AddListener(l)
//
//	for running {
//		inp.Poll(width, height)
//	}
//
// # Listeners
//
// There are three categories of listener: KeyListener, MouseListener and
// ControllerListener. A type implementing all three is a Listener. Each
// category has its own ordered chain. Listeners are notified in the order they
// were added, except for listeners added with AddPrimaryListener(), which are
// notified first.
//
// Listeners added during a call to Poll() (ie. from within another listener)
// do not receive events until the next call to Poll(). Removal is immediate
// and is safe to do from within a listener.
//
// A listener can call ConsumeEvent() to stop the current event from reaching
// the remaining listeners in the chain.
//
// # Queries
//
// Separate from the listener mechanism are the one-shot queries:
// IsKeyPressed(), IsMousePressed() and IsControlPressed(). These return true
// once for every press. The record of presses is cleared when the Input is
// paused and whenever the source reports that the view does not have focus.
//
// # Coordinates
//
// Pointer coordinates delivered to listeners are logical coordinates, with
// the origin in the top-left corner of the view. The conversion from raw
// coordinates can be scaled and offset with SetScale() and SetOffset().
//
// # Controllers
//
// Game controllers must be initialised with InitControllers(). A failure to
// initialise controllers is not fatal and the Input continues with no
// controllers.
package input
