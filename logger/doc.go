// This file is part of ChessWAV.
//
// ChessWAV is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChessWAV is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChessWAV.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for ChessWAV. Entries are made of a tag
// and a detail string and are written out as:
//
//	tag: detail
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The log has a maximum length and the oldest entries are
// discarded once that length is reached.
//
// Whether an entry is actually added depends on the Permission passed to
// Log() or Logf(). The Allow value always permits logging. Other types can
// implement Permission to silence logging in particular contexts, for example
// the composer package silences logging when asked to run quietly.
//
// Entries can be echoed to an io.Writer as they are added with SetEcho().
package logger
