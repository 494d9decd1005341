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

// Package sdlpoll is an implementation of userinput.Source and
// userinput.ControllerSource using SDL.
//
// SDL requires that events are serviced on the main thread. The Service()
// function must be called from the main thread before every call to
// input.Poll(). The remaining functions of the Source only read the state
// gathered by Service() and can be called from the thread running the input
// system.
package sdlpoll
