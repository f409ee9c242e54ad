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

	"github.com/jetsetilly/arm4/hardware/cpu/mmu"
	"github.com/jetsetilly/arm4/test"
)

func newTestCPU() *Cpu {
	c := New(mmu.NewFlatRAM(0x1000))
	c.HWReset()
	return c
}

// Form A, LSR #0 encodes LSR #32 (S5).
func TestOperand2FormALSR32(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x80000000)
	// Rm=0, type=LSR(01), amt=0
	word := uint32(0)<<0 | uint32(0b01)<<5
	e := entry{mode: c.Mode(), c: false}
	op2, carry := c.operand2FormA(e, word)
	test.ExpectEquality(t, op2, uint32(0))
	test.Equate(t, carry, true)
}

// Form A, ASR #0 encodes ASR #32.
func TestOperand2FormAASR32(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x80000000)
	word := uint32(0b10) << 5
	e := entry{mode: c.Mode()}
	op2, carry := c.operand2FormA(e, word)
	test.ExpectEquality(t, op2, uint32(0xffffffff))
	test.Equate(t, carry, true)
}

// Form A, ROR #0 encodes RRX.
func TestOperand2FormARRX(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x00000002)
	word := uint32(0b11) << 5
	e := entry{mode: c.Mode(), c: true}
	op2, carry := c.operand2FormA(e, word)
	test.ExpectEquality(t, op2, uint32(0x80000001))
	test.Equate(t, carry, false)
}

// Form B, LSL by a register amount == 32 shifts out the LSB as carry.
func TestOperand2FormBLSL32(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0x00000001) // Rm
	c.SetReg(1, 32)         // Rs
	word := uint32(1)<<8 | uint32(0b00)<<5 | 1<<4
	e := entry{mode: c.Mode()}
	op2, carry, unpred := c.operand2FormB(e, word)
	test.ExpectEquality(t, op2, uint32(0))
	test.Equate(t, carry, true)
	test.Equate(t, unpred, false)
}

func TestOperand2FormBRsIsPCIsUnpredictable(t *testing.T) {
	c := newTestCPU()
	word := uint32(15)<<8 | 1<<4
	e := entry{mode: c.Mode()}
	_, _, unpred := c.operand2FormB(e, word)
	test.Equate(t, unpred, true)
}

func TestOperand2FormCRotatedImmediate(t *testing.T) {
	c := newTestCPU()
	// imm8=0xFF, rot=4 (ror by 8)
	word := uint32(4)<<8 | uint32(0xFF)
	e := entry{mode: c.Mode()}
	op2, _ := c.operand2FormC(e, word)
	test.ExpectEquality(t, op2, uint32(0xFF000000))
}
