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

package cpu

import (
	"encoding/binary"

	"github.com/jetsetilly/arm4/curated"
	"github.com/jetsetilly/arm4/hardware/cpu/registers"
)

const (
	stateMagic   = "AC4S"
	stateVersion = uint32(1)
	stateLength  = 4 + 4 + 31*4 + 4 + 6*4 + 8
)

// FormatError is returned by LoadState when the byte slice does not carry
// the expected magic, version, or length.
const FormatError = "cpu: save state format error: %s"

// SaveState encodes the persistent subset of CPU state (§6): the physical
// register file, CPSR, the SPSR bank, and the lifetime instruction counter.
// Scratch/temporary fields are never serialised.
func (c *Cpu) SaveState() []byte {
	buf := make([]byte, stateLength)
	i := 0

	copy(buf[i:], stateMagic)
	i += 4

	binary.LittleEndian.PutUint32(buf[i:], stateVersion)
	i += 4

	for _, r := range c.R {
		binary.LittleEndian.PutUint32(buf[i:], r)
		i += 4
	}

	binary.LittleEndian.PutUint32(buf[i:], uint32(c.cpsr))
	i += 4

	for _, s := range c.spsr {
		binary.LittleEndian.PutUint32(buf[i:], uint32(s))
		i += 4
	}

	binary.LittleEndian.PutUint64(buf[i:], c.instExecutedTotal)
	i += 8

	return buf
}

// LoadState decodes a byte slice produced by SaveState, replacing the
// receiver's persistent state entirely. Scratch fields (LastResult, the
// in-call instruction counter) are re-zeroed rather than restored.
func (c *Cpu) LoadState(data []byte) error {
	if len(data) != stateLength {
		return curated.Errorf(FormatError, "wrong length")
	}
	if string(data[0:4]) != stateMagic {
		return curated.Errorf(FormatError, "bad magic")
	}

	i := 4
	version := binary.LittleEndian.Uint32(data[i:])
	if version != stateVersion {
		return curated.Errorf(FormatError, "unsupported version")
	}
	i += 4

	var r [31]uint32
	for n := range r {
		r[n] = binary.LittleEndian.Uint32(data[i:])
		i += 4
	}

	cpsr := binary.LittleEndian.Uint32(data[i:])
	i += 4

	var spsr [6]uint32
	for n := range spsr {
		spsr[n] = binary.LittleEndian.Uint32(data[i:])
		i += 4
	}

	total := binary.LittleEndian.Uint64(data[i:])

	c.R = r
	c.cpsr = registers.PSR(cpsr)
	for n := range c.spsr {
		c.spsr[n] = registers.PSR(spsr[n])
	}
	c.instExecutedTotal = total
	c.instExecutedInCurrentCall = 0
	c.LastResult.Reset()

	return nil
}
