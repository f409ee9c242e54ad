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

// CappedWriter is an io.Writer that accepts at most size bytes in total;
// anything written past that limit is silently discarded.
type CappedWriter struct {
	size int
	data []byte
}

// NewCappedWriter returns a CappedWriter with the given capacity in bytes.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, curated.Errorf("test: capped writer size must be positive")
	}
	return &CappedWriter{size: size}, nil
}

func (c *CappedWriter) Write(p []byte) (int, error) {
	remaining := c.size - len(c.data)
	if remaining <= 0 {
		return len(p), nil
	}
	if len(p) > remaining {
		p = p[:remaining]
	}
	c.data = append(c.data, p...)
	return len(p), nil
}

// String returns the bytes retained so far.
func (c *CappedWriter) String() string {
	return string(c.data)
}

// Reset discards the retained bytes.
func (c *CappedWriter) Reset() {
	c.data = nil
}
