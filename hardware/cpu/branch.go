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

// executeBranch implements B/BL (§4.5).
func (c *Cpu) executeBranch(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	lBit := bits(word, 24, 24) != 0
	offset := signExtend(bits(word, 23, 0)<<2, 26)

	pc := e.realPC + 8
	if lBit {
		c.SetReg(14, pc)
	}
	c.setPC(pc + offset)

	return execution.Branched, execution.Exception{}, execution.NoUnpredictable
}

// executeBX implements BX (§4.5): branch, optionally raising UND when the
// target address carries the Thumb bit since this core does not implement
// Thumb state.
func (c *Cpu) executeBX(e entry, word uint32) (execution.Outcome, execution.Exception, execution.Unpredictable) {
	rnIdx := int(bits(word, 3, 0))
	target := c.Reg(rnIdx)

	if target&1 != 0 {
		return execution.Raise, execution.Exception{
			Target:     registers.UND,
			ReturnLink: e.realPC + 4,
			Vector:     execution.VectorUND,
		}, execution.NoUnpredictable
	}

	c.setPC(target)
	return execution.Branched, execution.Exception{}, execution.NoUnpredictable
}
