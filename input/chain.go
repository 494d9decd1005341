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

import "slices"

// receiver is the constraint for the listener types stored in a chain.
// listeners are compared by identity so the dynamic type of a listener must
// be comparable. in practice listeners will be pointer types
type receiver interface {
	comparable
	Receiver
}

type pendingListener[T receiver] struct {
	l       T
	primary bool
}

// chain is an ordered list of listeners. additions are deferred until the
// next call to flush(). removals are immediate but never modify the backing
// array of the active list, so an iteration over the active list in progress
// is unaffected by a removal.
type chain[T receiver] struct {
	active  []T
	pending []pendingListener[T]

	// incremented on every removal. used by dispatch to detect that a
	// listener may have been removed during the iteration
	removals int
}

func (c *chain[T]) add(l T) {
	c.pending = append(c.pending, pendingListener[T]{l: l})
}

func (c *chain[T]) addPrimary(l T) {
	c.pending = append(c.pending, pendingListener[T]{l: l, primary: true})
}

// without returns a new slice with the listener removed.
func (c *chain[T]) without(l T) ([]T, bool) {
	i := slices.Index(c.active, l)
	if i < 0 {
		return c.active, false
	}
	n := make([]T, 0, len(c.active)-1)
	n = append(n, c.active[:i]...)
	n = append(n, c.active[i+1:]...)
	return n, true
}

func (c *chain[T]) remove(l T) {
	c.pending = slices.DeleteFunc(c.pending, func(p pendingListener[T]) bool {
		return p.l == l
	})
	var ok bool
	if c.active, ok = c.without(l); ok {
		c.removals++
	}
}

func (c *chain[T]) clear() {
	if len(c.active) > 0 {
		c.removals++
	}
	c.active = nil
	c.pending = nil
}

func (c *chain[T]) contains(l T) bool {
	return slices.Contains(c.active, l)
}

// flush moves pending listeners to the active list. a normal addition is
// appended unless the listener is already present. a primary addition always
// moves the listener to the front.
func (c *chain[T]) flush() {
	for _, p := range c.pending {
		if p.primary {
			n, _ := c.without(p.l)
			c.active = append([]T{p.l}, n...)
		} else if !c.contains(p.l) {
			c.active = append(c.active, p.l)
		}
	}
	c.pending = c.pending[:0]
}

// dispatch notifies every listener in the chain that is accepting input. the
// iteration stops early if the event is consumed.
func dispatch[T receiver](inp *Input, c *chain[T], notify func(T)) {
	inp.consumed = false

	removals := c.removals
	for _, l := range c.active {
		if c.removals != removals && !c.contains(l) {
			continue
		}
		if !l.IsAcceptingInput() {
			continue
		}
		notify(l)
		if inp.consumed {
			break
		}
	}
}
