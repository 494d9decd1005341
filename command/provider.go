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
	"slices"
	"strings"

	"github.com/jetsetilly/framepoll/input"
)

// Command is the name of an action that controls can be bound to.
type Command string

// Listener implementations are notified when a control bound to a command is
// pressed or released.
type Listener interface {
	ControlPressed(cmd Command)
	ControlReleased(cmd Command)
}

type commandState struct {
	down    bool
	pressed bool
}

// Provider tracks the state of commands by listening to an input.Input.
type Provider struct {
	inp *input.Input

	// the input listener registered with the Input
	l *inputListener

	bindings  map[Control]Command
	state     map[Command]*commandState
	listeners []Listener

	active bool
}

// NewProvider is the preferred method of initialisation for the Provider
// type. The Provider adds a listener to every chain of the Input. The
// Provider is active.
func NewProvider(inp *input.Input) *Provider {
	p := &Provider{
		inp:      inp,
		bindings: make(map[Control]Command),
		state:    make(map[Command]*commandState),
		active:   true,
	}
	p.l = &inputListener{p: p}
	inp.AddListener(p.l)
	return p
}

// Detach the provider from the Input. The state of commands will no longer
// change.
func (p *Provider) Detach() {
	p.inp.RemoveListener(p.l)
}

func (p *Provider) String() string {
	s := strings.Builder{}
	for _, cmd := range p.UniqueCommands() {
		s.WriteString(string(cmd))
		s.WriteString(":")
		for _, c := range p.ControlsFor(cmd) {
			s.WriteString(" ")
			s.WriteString(c.String())
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Bind a control to a command. If the control is already bound then the
// previous binding is replaced.
func (p *Provider) Bind(control Control, cmd Command) {
	if prev, ok := p.bindings[control]; ok && prev != cmd {
		p.Unbind(control)
	}
	p.bindings[control] = cmd
	if _, ok := p.state[cmd]; !ok {
		p.state[cmd] = &commandState{}
	}
}

// Unbind a control. The state of the command is forgotten if no other
// control is bound to it.
func (p *Provider) Unbind(control Control) {
	cmd, ok := p.bindings[control]
	if !ok {
		return
	}
	delete(p.bindings, control)
	if len(p.ControlsFor(cmd)) == 0 {
		delete(p.state, cmd)
	}
}

// Clear unbinds every control bound to the command.
func (p *Provider) Clear(cmd Command) {
	for _, c := range p.ControlsFor(cmd) {
		p.Unbind(c)
	}
}

// UniqueCommands returns every command that has at least one control bound
// to it, in alphabetical order.
func (p *Provider) UniqueCommands() []Command {
	var cmds []Command
	for _, cmd := range p.bindings {
		if !slices.Contains(cmds, cmd) {
			cmds = append(cmds, cmd)
		}
	}
	slices.Sort(cmds)
	return cmds
}

// ControlsFor returns the controls bound to the command, ordered by their
// serialised form.
func (p *Provider) ControlsFor(cmd Command) []Control {
	var controls []Control
	for c, bc := range p.bindings {
		if bc == cmd {
			controls = append(controls, c)
		}
	}
	slices.SortFunc(controls, func(a, b Control) int {
		return strings.Compare(a.String(), b.String())
	})
	return controls
}

// SetActive sets whether listeners are notified. Command state is tracked
// even when the provider is not active.
func (p *Provider) SetActive(active bool) {
	p.active = active
}

// IsActive returns true if the provider is active.
func (p *Provider) IsActive() bool {
	return p.active
}

// AddListener adds a listener to the provider.
func (p *Provider) AddListener(l Listener) {
	if l == nil {
		panic("command: nil listener")
	}
	if !slices.Contains(p.listeners, l) {
		p.listeners = append(p.listeners, l)
	}
}

// RemoveListener removes a listener from the provider.
func (p *Provider) RemoveListener(l Listener) {
	p.listeners = slices.DeleteFunc(slices.Clone(p.listeners), func(e Listener) bool {
		return e == l
	})
}

// IsCommandControlDown returns true if a control bound to the command is
// down. An unbound command is never down.
func (p *Provider) IsCommandControlDown(cmd Command) bool {
	if st, ok := p.state[cmd]; ok {
		return st.down
	}
	return false
}

// IsCommandControlPressed returns true if a control bound to the command has
// been pressed since the last call to IsCommandControlPressed().
func (p *Provider) IsCommandControlPressed(cmd Command) bool {
	if st, ok := p.state[cmd]; ok && st.pressed {
		st.pressed = false
		return true
	}
	return false
}

func (p *Provider) firePressed(control Control) {
	cmd, ok := p.bindings[control]
	if !ok {
		return
	}

	st := p.state[cmd]
	st.down = true
	st.pressed = true

	if !p.active {
		return
	}
	for _, l := range p.listeners {
		l.ControlPressed(cmd)
	}
}

func (p *Provider) fireReleased(control Control) {
	cmd, ok := p.bindings[control]
	if !ok {
		return
	}

	p.state[cmd].down = false

	if !p.active {
		return
	}
	for _, l := range p.listeners {
		l.ControlReleased(cmd)
	}
}

// inputListener converts input events into controls.
type inputListener struct {
	input.Adapter
	p *Provider
}

func (l *inputListener) KeyPressed(key int, _ rune) {
	l.p.firePressed(KeyControl{Key: key})
}

func (l *inputListener) KeyReleased(key int, _ rune) {
	l.p.fireReleased(KeyControl{Key: key})
}

func (l *inputListener) MousePressed(button int, _ int, _ int) {
	l.p.firePressed(MouseButtonControl{Button: button})
}

func (l *inputListener) MouseReleased(button int, _ int, _ int) {
	l.p.fireReleased(MouseButtonControl{Button: button})
}

func (l *inputListener) ControllerDirectionPressed(controller int, dir input.Direction) {
	l.p.firePressed(ControllerDirectionControl{Controller: controller, Direction: dir})
}

func (l *inputListener) ControllerDirectionReleased(controller int, dir input.Direction) {
	l.p.fireReleased(ControllerDirectionControl{Controller: controller, Direction: dir})
}

func (l *inputListener) ControllerButtonPressed(controller int, button int) {
	l.p.firePressed(ControllerButtonControl{Controller: controller, Button: button})
}

func (l *inputListener) ControllerButtonReleased(controller int, button int) {
	l.p.fireReleased(ControllerButtonControl{Controller: controller, Button: button})
}
