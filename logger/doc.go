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

// Package logger implements a capped, ring-buffered log of tagged entries.
// A Logger can be created directly with NewLogger, or the package-level
// functions can be used against a single process-wide instance.
//
// Every entry is gated by a Permission, allowing a caller (typically a
// subsystem's Preferences or similar) to suppress its own logging without
// the logger needing to know anything about it.
package logger
