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

import "github.com/jetsetilly/arm4/hardware/cpu/execution"

// executeMultiply implements MUL/MLA (§4.6): 32x32->32 truncated product,
// optionally accumulated.
func (c *Cpu) executeMultiply(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	aBit := bits(word, 21, 21) != 0
	sBit := bits(word, 20, 20) != 0
	rdIdx := int(bits(word, 19, 16))
	rsIdx := int(bits(word, 11, 8))
	rmIdx := int(bits(word, 3, 0))

	result := c.Reg(rmIdx) * c.Reg(rsIdx)
	if aBit {
		result += c.Reg(int(bits(word, 15, 12)))
	}

	c.SetReg(rdIdx, result)

	if sBit {
		n := bits(result, 31, 31) != 0
		z := result == 0
		c.cpsr = c.cpsr.SetNZCV(n, z, e.c, e.v)
	}

	return execution.Continue, execution.Exception{}, execution.NoUnpredictable
}

// executeMultiplyLong implements UMULL/SMULL/UMLAL/SMLAL (§4.6): a 64 bit
// product, signed or unsigned, optionally accumulated onto (RdHi:RdLo).
func (c *Cpu) executeMultiplyLong(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	signed := bits(word, 22, 22) != 0
	aBit := bits(word, 21, 21) != 0
	sBit := bits(word, 20, 20) != 0
	rdHiIdx := int(bits(word, 19, 16))
	rdLoIdx := int(bits(word, 15, 12))
	rsIdx := int(bits(word, 11, 8))
	rmIdx := int(bits(word, 3, 0))

	rm := c.Reg(rmIdx)
	rs := c.Reg(rsIdx)

	var product uint64
	if signed {
		product = uint64(int64(int32(rm)) * int64(int32(rs)))
	} else {
		product = uint64(rm) * uint64(rs)
	}

	if aBit {
		acc := uint64(c.Reg(rdHiIdx))<<32 | uint64(c.Reg(rdLoIdx))
		product += acc
	}

	hi := uint32(product >> 32)
	lo := uint32(product)

	c.SetReg(rdHiIdx, hi)
	c.SetReg(rdLoIdx, lo)

	if sBit {
		n := bits(hi, 31, 31) != 0
		z := product == 0
		c.cpsr = c.cpsr.SetNZCV(n, z, e.c, e.v)
	}

	return execution.Continue, execution.Exception{}, execution.NoUnpredictable
}
