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

package test

import "github.com/jetsetilly/arm4/curated"

// RingWriter is an io.Writer retaining only the most recently written size
// bytes, discarding from the front as new bytes arrive.
type RingWriter struct {
	size int
	data []byte
}

// NewRingWriter returns a RingWriter with the given capacity in bytes.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf("test: ring writer size must be positive")
	}
	return &RingWriter{size: size}, nil
}

func (r *RingWriter) Write(p []byte) (int, error) {
	r.data = append(r.data, p...)
	if len(r.data) > r.size {
		r.data = r.data[len(r.data)-r.size:]
	}
	return len(p), nil
}

// String returns the currently retained bytes.
func (r *RingWriter) String() string {
	return string(r.data)
}

// Reset discards the retained bytes.
func (r *RingWriter) Reset() {
	r.data = nil
}
