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

// Package recorder writes a transcript of the transitions and state changes
// of a userinput.Source, and replays the transcript as a userinput.Source.
//
// The Recorder type wraps the source being recorded. It is used in place of
// that source when creating an input.Input. The Playback type is created from
// a transcript and can be used in place of any source. Replaying a
// transcript with the same sequence of calls to Poll() delivers the same
// events to listeners.
//
// A transcript is a text file. The first lines of the file are the header,
// after which each line is a single transition or state change, prefixed with
// the frame it occurred in.
package recorder
