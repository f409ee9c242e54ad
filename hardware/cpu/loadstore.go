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

// dataAbort builds the data-abort exception raised by every load/store
// executor in this file (§4.9's DAbt vector, §4.8 step 6).
func dataAbort(e entry) execution.Exception {
	return execution.Exception{
		Target:     registers.ABT,
		ReturnLink: e.realPC + 4,
		Vector:     execution.VectorDAbt,
	}
}

// effectiveAddress computes the addressing-mode fields shared by
// executeSingleDataTransfer, executeHalfwordTransfer and the register-offset
// form of each (§4.8 steps 1-4). It returns the effective address, the
// post-writeback value, and whether the access must be forced to user
// permissions.
func (c *Cpu) effectiveAddress(e entry, word uint32, offset uint32) (addr, writebackVal uint32, treatAsUser bool) {
	pBit := bits(word, 24, 24) != 0
	uBit := bits(word, 23, 23) != 0
	wBit := bits(word, 21, 21) != 0
	rnIdx := int(bits(word, 19, 16))

	rn := c.Reg(rnIdx)

	var signedOffset uint32
	if uBit {
		signedOffset = offset
	} else {
		signedOffset = -offset
	}

	if pBit {
		addr = rn + signedOffset
	} else {
		addr = rn
	}
	writebackVal = rn + signedOffset

	// post-indexed with W=1 is the LDRT/STRT "T" encoding: user permissions
	// are forced for the duration of the access even though the core is
	// privileged. Pre-indexed writeback never carries this meaning.
	treatAsUser = !pBit && wBit

	return addr, writebackVal, treatAsUser
}

// commitWriteback applies §4.8 step 7's write-back rule: post-index always
// writes Rn, pre-index writes it only when W=1.
func (c *Cpu) commitWriteback(word uint32, rnIdx int, writebackVal uint32) {
	pBit := bits(word, 24, 24) != 0
	wBit := bits(word, 21, 21) != 0
	if !pBit || wBit {
		c.SetReg(rnIdx, writebackVal)
	}
}

// executeSingleDataTransfer implements LDR/STR, byte or word, including the
// LDRT/STRT user-mode-forced variants (§4.8).
func (c *Cpu) executeSingleDataTransfer(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	bBit := bits(word, 22, 22) != 0
	lBit := bits(word, 20, 20) != 0
	rnIdx := int(bits(word, 19, 16))
	rdIdx := int(bits(word, 15, 12))

	var offset uint32
	if bits(word, 25, 25) != 0 {
		offset, _ = c.operand2FormA(e, word)
	} else {
		offset = bits(word, 11, 0)
	}

	addr, writebackVal, treatAsUser := c.effectiveAddress(e, word, offset)

	if lBit {
		var loaded uint32
		var abort bool
		if bBit {
			var b uint8
			b, abort = c.mem.ReadByte(addr, treatAsUser)
			loaded = uint32(b)
		} else {
			loaded, abort = c.mem.ReadWord(addr, treatAsUser)
		}
		if abort {
			return execution.Raise, dataAbort(e), execution.NoUnpredictable
		}
		c.SetReg(rdIdx, loaded)
		c.commitWriteback(word, rnIdx, writebackVal)
		return execution.Continue, execution.Exception{}, execution.NoUnpredictable
	}

	// STR: per the documented Open Question resolution, the stored value is
	// Rd's entry value, read via rd_regidx.
	storeVal := c.Reg(rdIdx)
	var abort bool
	if bBit {
		abort = c.mem.WriteByte(addr, uint8(storeVal), treatAsUser)
	} else {
		abort = c.mem.WriteWord(addr, storeVal, treatAsUser)
	}
	if abort {
		return execution.Raise, dataAbort(e), execution.NoUnpredictable
	}
	c.commitWriteback(word, rnIdx, writebackVal)
	return execution.Continue, execution.Exception{}, execution.NoUnpredictable
}

// executeHalfwordTransfer implements LDRH/STRH/LDRSB/LDRSH (§4.8): the same
// addressing framework as executeSingleDataTransfer, narrower or
// sign-extended transfers, and no register-offset shift (the offset is
// either Rm directly or a split 8 bit immediate).
func (c *Cpu) executeHalfwordTransfer(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	lBit := bits(word, 20, 20) != 0
	rnIdx := int(bits(word, 19, 16))
	rdIdx := int(bits(word, 15, 12))
	sBit := bits(word, 6, 6) != 0
	hBit := bits(word, 5, 5) != 0

	var offset uint32
	if bits(word, 22, 22) != 0 {
		offset = bits(word, 11, 8)<<4 | bits(word, 3, 0)
	} else {
		offset = c.Reg(int(bits(word, 3, 0)))
	}

	addr, writebackVal, treatAsUser := c.effectiveAddress(e, word, offset)

	if lBit {
		var loaded uint32
		var abort bool
		switch {
		case !sBit && hBit:
			var h uint16
			h, abort = c.mem.ReadHalfword(addr, treatAsUser)
			loaded = uint32(h)
		case sBit && !hBit:
			var b uint8
			b, abort = c.mem.ReadByte(addr, treatAsUser)
			loaded = signExtend(uint32(b), 8)
		case sBit && hBit:
			var h uint16
			h, abort = c.mem.ReadHalfword(addr, treatAsUser)
			loaded = signExtend(uint32(h), 16)
		}
		if abort {
			return execution.Raise, dataAbort(e), execution.NoUnpredictable
		}
		c.SetReg(rdIdx, loaded)
		c.commitWriteback(word, rnIdx, writebackVal)
		return execution.Continue, execution.Exception{}, execution.NoUnpredictable
	}

	storeVal := c.Reg(rdIdx)
	abort := c.mem.WriteHalfword(addr, uint16(storeVal), treatAsUser)
	if abort {
		return execution.Raise, dataAbort(e), execution.NoUnpredictable
	}
	c.commitWriteback(word, rnIdx, writebackVal)
	return execution.Continue, execution.Exception{}, execution.NoUnpredictable
}

// executeSwap implements SWP/SWPB (§4.8): an atomic read-then-write of a
// single memory location, with the read staged into Rd only after both
// accesses have a chance to succeed.
func (c *Cpu) executeSwap(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	bBit := bits(word, 22, 22) != 0
	rnIdx := int(bits(word, 19, 16))
	rdIdx := int(bits(word, 15, 12))
	rmIdx := int(bits(word, 3, 0))

	addr := c.Reg(rnIdx)
	rm := c.Reg(rmIdx)

	if bBit {
		temp, abort := c.mem.ReadByte(addr, false)
		if abort {
			return execution.Raise, dataAbort(e), execution.NoUnpredictable
		}
		if abort := c.mem.WriteByte(addr, uint8(rm), false); abort {
			return execution.Raise, dataAbort(e), execution.NoUnpredictable
		}
		c.SetReg(rdIdx, uint32(temp))
		return execution.Continue, execution.Exception{}, execution.NoUnpredictable
	}

	temp, abort := c.mem.ReadWord(addr, false)
	if abort {
		return execution.Raise, dataAbort(e), execution.NoUnpredictable
	}
	if abort := c.mem.WriteWord(addr, rm, false); abort {
		return execution.Raise, dataAbort(e), execution.NoUnpredictable
	}
	c.SetReg(rdIdx, temp)
	return execution.Continue, execution.Exception{}, execution.NoUnpredictable
}
