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
	"github.com/jetsetilly/arm4/hardware/cpu/execution"
	"github.com/jetsetilly/arm4/hardware/cpu/instructions"
	"github.com/jetsetilly/arm4/hardware/cpu/registers"
)

// executeDataProcessing implements §4.4: the 16 ALU opcodes, their NZCV
// derivation, and the S-bit/Rd=R15 special cases.
func (c *Cpu) executeDataProcessing(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	opcode := instructions.DPOpcode(bits(word, 24, 21))
	rnIdx := int(bits(word, 19, 16))
	rdIdx := int(bits(word, 15, 12))
	sBit := bits(word, 20, 20) != 0

	var op2 uint32
	var shifterCarry bool
	var unpred execution.Unpredictable

	if bits(word, 25, 25) != 0 {
		op2, shifterCarry = c.operand2FormC(e, word)
	} else if bits(word, 4, 4) != 0 {
		var u bool
		op2, shifterCarry, u = c.operand2FormB(e, word)
		if u {
			unpred = execution.ShiftAmountFromPC
		}
	} else {
		op2, shifterCarry = c.operand2FormA(e, word)
	}

	rn := c.Reg(rnIdx)

	var result uint32
	var carry, overflow bool

	switch opcode {
	case instructions.AND, instructions.TST:
		result = rn & op2
		carry, overflow = shifterCarry, e.v
	case instructions.EOR, instructions.TEQ:
		result = rn ^ op2
		carry, overflow = shifterCarry, e.v
	case instructions.SUB, instructions.CMP:
		result = rn - op2
		carry = !subUOvf(rn, op2)
		overflow = subSOvf(rn, op2, true)
	case instructions.RSB:
		result = op2 - rn
		carry = !subUOvf(op2, rn)
		overflow = subSOvf(op2, rn, true)
	case instructions.ADD, instructions.CMN:
		result = rn + op2
		carry = addUOvf(rn, op2, false)
		overflow = addSOvf(rn, op2, false)
	case instructions.ADC:
		result = rn + op2
		if e.c {
			result++
		}
		carry = addUOvf(rn, op2, e.c)
		overflow = addSOvf(rn, op2, e.c)
	case instructions.SBC:
		result = rn - op2
		if !e.c {
			result--
		}
		carry = !sbcUOvf(rn, op2, e.c)
		overflow = subSOvf(rn, op2, e.c)
	case instructions.RSC:
		result = op2 - rn
		if !e.c {
			result--
		}
		carry = !sbcUOvf(op2, rn, e.c)
		overflow = subSOvf(op2, rn, e.c)
	case instructions.ORR:
		result = rn | op2
		carry, overflow = shifterCarry, e.v
	case instructions.MOV:
		result = op2
		carry, overflow = shifterCarry, e.v
	case instructions.BIC:
		result = rn &^ op2
		carry, overflow = shifterCarry, e.v
	case instructions.MVN:
		result = ^op2
		carry, overflow = shifterCarry, e.v
	}

	n := bits(result, 31, 31) != 0
	z := result == 0

	writeback := !opcode.NoWriteback()

	if rdIdx == 15 {
		if writeback {
			c.SetReg(15, result)
		}

		if sBit {
			spsrIdx, ok := registers.SPSRIndex(e.mode)
			if !ok {
				// USR/SYS: reserved-unpredictable; no flag update, no
				// CPSR restore, PC already written above if writeback.
				return execution.Branched, execution.Exception{}, execution.SBitR15UserMode
			}
			c.cpsr = c.spsr[spsrIdx]
		}

		return execution.Branched, execution.Exception{}, unpred
	}

	if writeback {
		c.SetReg(rdIdx, result)
	}

	if sBit {
		c.cpsr = c.cpsr.SetNZCV(n, z, carry, overflow)
	}

	return execution.Continue, execution.Exception{}, unpred
}
