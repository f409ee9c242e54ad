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
	"testing"

	"github.com/jetsetilly/arm4/hardware/cpu/instructions"
	"github.com/jetsetilly/arm4/test"
)

// dpWord builds an AL-condition, register-operand2 (Form A, LSL #0) data
// processing instruction: cond=AL(1110), op=00, opcode, S, Rn, Rd, 0, Rm.
func dpWord(opcode instructions.DPOpcode, s bool, rn, rd, rm int) uint32 {
	word := uint32(0b1110) << 28
	word |= uint32(opcode) << 21
	if s {
		word |= 1 << 20
	}
	word |= uint32(rn) << 16
	word |= uint32(rd) << 12
	word |= uint32(rm)
	return word
}

// execWord writes word at the current PC and runs exactly one step.
func execWord(c *Cpu, word uint32) {
	c.mem.WriteWord(c.pc(), word, false)
	c.step()
}

func TestDataProcessingANDEOR(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 0xF0F0)
	c.SetReg(2, 0x0FF0)
	execWord(c, dpWord(instructions.AND, false, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0x00F0))

	execWord(c, dpWord(instructions.EOR, false, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0xFF00))
}

func TestDataProcessingSUBSetsCarryAsNoBorrow(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 5)
	c.SetReg(2, 3)
	execWord(c, dpWord(instructions.SUB, true, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(2))
	test.Equate(t, c.CPSR().C(), true)
	test.Equate(t, c.CPSR().Z(), false)

	// 3 - 5 borrows: carry clear.
	execWord(c, dpWord(instructions.SUB, true, 2, 0, 1))
	test.ExpectEquality(t, c.Reg(0), uint32(0xfffffffe))
	test.Equate(t, c.CPSR().C(), false)
}

func TestDataProcessingADDCarryOverflow(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 0xffffffff)
	c.SetReg(2, 1)
	execWord(c, dpWord(instructions.ADD, true, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0))
	test.Equate(t, c.CPSR().C(), true)
	test.Equate(t, c.CPSR().Z(), true)
	test.Equate(t, c.CPSR().V(), false)
}

func TestDataProcessingORRMOVBICMVN(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 0x0F0F)
	c.SetReg(2, 0xF0F0)
	execWord(c, dpWord(instructions.ORR, false, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0xFFFF))

	execWord(c, dpWord(instructions.MOV, false, 0, 0, 1))
	test.ExpectEquality(t, c.Reg(0), uint32(0x0F0F))

	execWord(c, dpWord(instructions.BIC, false, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0x0F0F)&^uint32(0xF0F0))

	execWord(c, dpWord(instructions.MVN, false, 0, 0, 1))
	test.ExpectEquality(t, c.Reg(0), ^c.Reg(1))
}

func TestDataProcessingTSTTEQCMPCMNDoNotWriteRd(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x1234)
	c.SetReg(1, 0xF0F0)
	c.SetReg(2, 0x0FF0)
	execWord(c, dpWord(instructions.TST, true, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0x1234))
	test.Equate(t, c.CPSR().Z(), false)

	execWord(c, dpWord(instructions.CMP, true, 1, 0, 1))
	test.ExpectEquality(t, c.Reg(0), uint32(0x1234))
	test.Equate(t, c.CPSR().Z(), true)

	execWord(c, dpWord(instructions.TEQ, true, 1, 0, 1))
	test.ExpectEquality(t, c.Reg(0), uint32(0x1234))
	test.Equate(t, c.CPSR().Z(), true)

	execWord(c, dpWord(instructions.CMN, true, 1, 0, 2))
	test.ExpectEquality(t, c.Reg(0), uint32(0x1234))
	test.Equate(t, c.CPSR().Z(), false)
}

func TestDataProcessingADCSBCRSC(t *testing.T) {
	c := newTestCPU()
	// Force carry-in set via a preceding ADDS.
	c.SetReg(1, 0xffffffff)
	c.SetReg(2, 1)
	execWord(c, dpWord(instructions.ADD, true, 1, 0, 2)) // sets C=1, Z=1
	test.Equate(t, c.CPSR().C(), true)

	c.SetReg(3, 1)
	c.SetReg(4, 1)
	execWord(c, dpWord(instructions.ADC, false, 3, 0, 4))
	test.ExpectEquality(t, c.Reg(0), uint32(3)) // 1+1+carry(1)

	execWord(c, dpWord(instructions.SBC, false, 3, 0, 4))
	test.ExpectEquality(t, c.Reg(0), uint32(0)) // Rn - Op2 - NOT(C) == 1-1-0

	execWord(c, dpWord(instructions.RSC, false, 3, 0, 4))
	test.ExpectEquality(t, c.Reg(0), uint32(0)) // Op2 - Rn - NOT(C) == 1-1-0
}
