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

// Package statsview runs a local HTTP server showing runtime statistics of the
// framepoll process. The server is provided by github.com/go-echarts/statsview
// and is only compiled in when the statsview build tag is present:
//
//	go build -tags statsview
//
// Without the build tag, Available() returns false and Launch() does nothing
// other than say so.
//
// The graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// The standard pprof pages are also available at:
//
//	localhost:12600/debug/pprof/
//
// Allocation and goroutine graphs are useful for confirming that polling does
// not allocate on every frame.
package statsview
