// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger

import "io"

// central is the process-wide logger the package-level functions operate
// against.
var central = NewLogger(1024)

// Log appends an entry to the central logger, always allowed.
func Log(tag string, detail interface{}) {
	central.Log(Allow, tag, detail)
}

// Logf appends a printf-style entry to the central logger, always allowed.
func Logf(tag string, format string, values ...interface{}) {
	central.Logf(Allow, tag, format, values...)
}

// Write writes every entry retained by the central logger to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail writes the most recent n entries retained by the central logger to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}
