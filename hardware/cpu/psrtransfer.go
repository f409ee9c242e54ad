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
	"github.com/jetsetilly/arm4/hardware/cpu/registers"
)

// executePSRTransfer implements MRS/MSR (§4.7). inst[21] distinguishes MSR
// (1) from MRS (0); inst[22] selects SPSR of the current mode over CPSR.
func (c *Cpu) executePSRTransfer(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	useSPSR := bits(word, 22, 22) != 0
	isMSR := bits(word, 21, 21) != 0

	if !isMSR {
		rdIdx := int(bits(word, 15, 12))
		var val registers.PSR
		if useSPSR {
			if spsrIdx, ok := registers.SPSRIndex(e.mode); ok {
				val = c.spsr[spsrIdx]
			}
		} else {
			val = c.cpsr
		}
		c.SetReg(rdIdx, uint32(val))
		return execution.Continue, execution.Exception{}, execution.NoUnpredictable
	}

	var srcVal uint32
	if bits(word, 25, 25) != 0 {
		srcVal, _ = c.operand2FormC(e, word)
	} else {
		srcVal = c.Reg(int(bits(word, 3, 0)))
	}

	fieldsOnly := bits(word, 16, 16) == 0

	if !e.mode.IsPrivileged() {
		// user mode: SPSR writes are silently dropped; CPSR writes are
		// restricted to the flag field regardless of the field-mask bit.
		if useSPSR {
			return execution.Continue, execution.Exception{}, execution.MSRUserModeRestricted
		}
		c.cpsr = c.cpsr.WithFlagField(srcVal)
		if !fieldsOnly {
			return execution.Continue, execution.Exception{}, execution.MSRUserModeRestricted
		}
		return execution.Continue, execution.Exception{}, execution.NoUnpredictable
	}

	if useSPSR {
		spsrIdx, ok := registers.SPSRIndex(e.mode)
		if !ok {
			return execution.Continue, execution.Exception{}, execution.NoUnpredictable
		}
		if fieldsOnly {
			c.spsr[spsrIdx] = c.spsr[spsrIdx].WithFlagField(srcVal)
		} else {
			c.spsr[spsrIdx] = registers.PSR(srcVal)
		}
		return execution.Continue, execution.Exception{}, execution.NoUnpredictable
	}

	if fieldsOnly {
		c.cpsr = c.cpsr.WithFlagField(srcVal)
	} else {
		c.cpsr = registers.PSR(srcVal)
	}
	return execution.Continue, execution.Exception{}, execution.NoUnpredictable
}
