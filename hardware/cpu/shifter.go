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

// shiftType is inst[6:5], the two bit shift-type field shared by Form A
// and Form B of the barrel shifter.
type shiftType uint8

const (
	shiftLSL shiftType = 0
	shiftLSR shiftType = 1
	shiftASR shiftType = 2
	shiftROR shiftType = 3
)

// rmValue reads Rm for use as a shifter operand. If Rm is R15, the value
// used is R15+8 to account for pipelining (§4.3 Form A), which is also
// correct for Form B since the same note applies there.
func (c *Cpu) rmValue(e entry, idx int) uint32 {
	v := c.Reg(idx)
	if idx == 15 {
		v += 8
	}
	return v
}

// operand2FormA computes (op2, shifter_carry_out) for a register operand
// with an immediate shift amount: inst[25]=0, inst[4]=0. This is also the
// addressing-mode shifter used by load/store register-offset addressing.
func (c *Cpu) operand2FormA(e entry, word uint32) (uint32, bool) {
	rm := int(bits(word, 3, 0))
	t := shiftType(bits(word, 6, 5))
	amt := int(bits(word, 11, 7))
	v := c.rmValue(e, rm)

	switch t {
	case shiftLSL:
		if amt == 0 {
			return v, e.c
		}
		return lsl(v, amt), bits(v, 32-amt, 32-amt) != 0

	case shiftLSR:
		if amt == 0 {
			// encodes LSR #32
			return 0, bits(v, 31, 31) != 0
		}
		return lsr(v, amt), bits(v, amt-1, amt-1) != 0

	case shiftASR:
		if amt == 0 {
			// encodes ASR #32
			if bits(v, 31, 31) != 0 {
				return 0xffffffff, true
			}
			return 0, false
		}
		return asr(v, amt), bits(v, amt-1, amt-1) != 0

	case shiftROR:
		if amt == 0 {
			// RRX
			var carryIn uint32
			if e.c {
				carryIn = 1
			}
			return (carryIn << 31) | lsr(v, 1), v&1 != 0
		}
		return ror(v, amt), bits(v, amt-1, amt-1) != 0
	}

	return v, e.c
}

// operand2FormB computes (op2, shifter_carry_out) for a register operand
// with a register-specified shift amount: inst[25]=0, inst[4]=1, inst[7]=0.
func (c *Cpu) operand2FormB(e entry, word uint32) (uint32, bool, bool) {
	rs := int(bits(word, 11, 8))
	rm := int(bits(word, 3, 0))
	t := shiftType(bits(word, 6, 5))

	var unpred bool
	if rs == 15 {
		unpred = true
	}

	amt := int(c.Reg(rs) & 0xff)
	v := c.rmValue(e, rm)

	if amt == 0 {
		return v, e.c, unpred
	}

	switch t {
	case shiftLSL:
		switch {
		case amt == 32:
			return 0, v&1 != 0, unpred
		case amt > 32:
			return 0, false, unpred
		default:
			return lsl(v, amt), bits(v, 32-amt, 32-amt) != 0, unpred
		}

	case shiftLSR:
		switch {
		case amt == 32:
			return 0, bits(v, 31, 31) != 0, unpred
		case amt > 32:
			return 0, false, unpred
		default:
			return lsr(v, amt), bits(v, amt-1, amt-1) != 0, unpred
		}

	case shiftASR:
		if amt >= 32 {
			if bits(v, 31, 31) != 0 {
				return 0xffffffff, true, unpred
			}
			return 0, false, unpred
		}
		return asr(v, amt), bits(v, amt-1, amt-1) != 0, unpred

	case shiftROR:
		amt &= 0x1f
		if amt == 0 {
			return v, bits(v, 31, 31) != 0, unpred
		}
		return ror(v, amt), bits(v, amt-1, amt-1) != 0, unpred
	}

	return v, e.c, unpred
}

// operand2FormC computes (op2, shifter_carry_out) for a rotated 8 bit
// immediate: inst[25]=1.
func (c *Cpu) operand2FormC(e entry, word uint32) (uint32, bool) {
	rot := int(bits(word, 11, 8))
	imm8 := bits(word, 7, 0)
	if rot == 0 {
		return imm8, e.c
	}
	op2 := ror(imm8, 2*rot)
	return op2, bits(op2, 31, 31) != 0
}
