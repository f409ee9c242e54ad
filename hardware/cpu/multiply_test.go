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

	"github.com/jetsetilly/arm4/hardware/cpu/execution"
	"github.com/jetsetilly/arm4/test"
)

// mulWord builds a MUL/MLA encoding: Rd(19:16), Rn-acc(15:12), Rs(11:8),
// 1001(7:4), Rm(3:0).
func mulWord(aBit, sBit bool, rd, rnAcc, rs, rm int) uint32 {
	word := uint32(0b1001) << 4
	if aBit {
		word |= 1 << 21
	}
	if sBit {
		word |= 1 << 20
	}
	word |= uint32(rd) << 16
	word |= uint32(rnAcc) << 12
	word |= uint32(rs) << 8
	word |= uint32(rm)
	return word
}

func TestExecuteMultiplyMUL(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 6)
	c.SetReg(2, 7)
	e := entry{mode: c.Mode()}
	outcome, _, _ := c.executeMultiply(e, mulWord(false, false, 0, 0, 2, 1))
	test.ExpectEquality(t, outcome, execution.Continue)
	test.ExpectEquality(t, c.Reg(0), uint32(42))
}

func TestExecuteMultiplyMLAAccumulates(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 6)
	c.SetReg(2, 7)
	c.SetReg(3, 100)
	e := entry{mode: c.Mode()}
	_, _, _ = c.executeMultiply(e, mulWord(true, false, 0, 3, 2, 1))
	test.ExpectEquality(t, c.Reg(0), uint32(142))
}

func TestExecuteMultiplySSetsFlagsPreservesCV(t *testing.T) {
	c := newTestCPU()
	c.SetReg(1, 0)
	c.SetReg(2, 5)
	e := entry{mode: c.Mode(), c: true, v: true}
	c.executeMultiply(e, mulWord(false, true, 0, 0, 2, 1))
	test.ExpectEquality(t, c.Reg(0), uint32(0))
	test.Equate(t, c.CPSR().Z(), true)
	test.Equate(t, c.CPSR().C(), true) // preserved from entry, not recomputed
	test.Equate(t, c.CPSR().V(), true)
}

// mullWord builds a MULL/MLAL encoding: U(22) A(21) S(20) RdHi(19:16)
// RdLo(15:12) Rs(11:8) 1001(7:4) Rm(3:0).
func mullWord(signed, aBit, sBit bool, rdHi, rdLo, rs, rm int) uint32 {
	word := uint32(0b1001) << 4
	if signed {
		word |= 1 << 22
	}
	if aBit {
		word |= 1 << 21
	}
	if sBit {
		word |= 1 << 20
	}
	word |= uint32(rdHi) << 16
	word |= uint32(rdLo) << 12
	word |= uint32(rs) << 8
	word |= uint32(rm)
	return word
}

func TestExecuteMultiplyLongUMULL(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0xffffffff)
	c.SetReg(1, 0xffffffff)
	e := entry{mode: c.Mode()}
	c.executeMultiplyLong(e, mullWord(false, false, false, 2, 3, 1, 0))
	// 0xffffffff * 0xffffffff = 0xfffffffe00000001
	test.ExpectEquality(t, c.Reg(2), uint32(0xfffffffe))
	test.ExpectEquality(t, c.Reg(3), uint32(0x00000001))
}

func TestExecuteMultiplyLongSMULLNegative(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 0xffffffff) // -1 as int32
	c.SetReg(1, 5)
	e := entry{mode: c.Mode()}
	c.executeMultiplyLong(e, mullWord(true, false, false, 2, 3, 1, 0))
	// -1 * 5 = -5 == 0xfffffffffffffffb
	test.ExpectEquality(t, c.Reg(2), uint32(0xffffffff))
	test.ExpectEquality(t, c.Reg(3), uint32(0xfffffffb))
}

func TestExecuteMultiplyLongUMLALAccumulates(t *testing.T) {
	c := newTestCPU()
	c.SetReg(0, 2)
	c.SetReg(1, 3)
	c.SetReg(2, 0)
	c.SetReg(3, 10)
	e := entry{mode: c.Mode()}
	c.executeMultiplyLong(e, mullWord(false, true, false, 2, 3, 1, 0))
	test.ExpectEquality(t, c.Reg(2), uint32(0))
	test.ExpectEquality(t, c.Reg(3), uint32(16))
}
