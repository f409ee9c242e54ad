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
	"github.com/jetsetilly/arm4/hardware/cpu/mmu"
	"github.com/jetsetilly/arm4/hardware/cpu/registers"
	"github.com/jetsetilly/arm4/logger"
)

// Config carries the one tunable the core currently exposes. It is held
// by value so a Cpu never shares configuration with another instance.
type Config struct {
	// StrictReservedEncodings is not read by any executor: the core's
	// reserved-unpredictable policy is fixed (§4.12) and behaves the same
	// whatever this flag holds.
	StrictReservedEncodings bool
}

// Cpu is the persistent architectural state of an ARMv4 core: the
// physical register store, CPSR, the SPSR bank, and the lifetime
// instruction counters. Scratch state captured for the duration of a
// single instruction lives in entry, not here.
type Cpu struct {
	Config Config

	mem mmu.MMU

	// R is the flat 31-slot physical register store. Use registers.Physical
	// to resolve an architectural r0-r15 access in a given mode; never
	// index R directly from outside this package.
	R [31]uint32

	cpsr registers.PSR

	// spsr[0] is unused; see registers.SPSRIndex.
	spsr [6]registers.PSR

	instExecutedTotal        uint64
	instExecutedInCurrentCall uint64

	// LastResult is updated at the end of every instruction (including
	// ones that failed their condition). It is exported for diagnostic
	// and test use; the dispatch loop never reads it back.
	LastResult execution.Result
}

// entry is the per-instruction scratch captured at instruction entry and
// treated as read-only for the rest of the instruction, per §3.
type entry struct {
	mode   registers.Mode
	realPC uint32
	n, z, c, v bool
}

// New returns a Cpu wired to the given memory collaborator. The returned
// Cpu is not yet in a defined architectural state; call HWReset before
// Execute.
func New(mem mmu.MMU) *Cpu {
	return &Cpu{mem: mem}
}

// HWReset brings the Cpu to the state defined by §4.11: registers zeroed,
// CPSR in SVC mode with both interrupt sources disabled, SPSR bank
// cleared, counters cleared, PC at the reset vector.
func (c *Cpu) HWReset() {
	c.R = [31]uint32{}
	c.spsr = [6]registers.PSR{}
	c.instExecutedTotal = 0
	c.instExecutedInCurrentCall = 0
	c.cpsr = 0x000000d3 // SVC, I=1, F=1
	c.setPC(0x00000000)
	c.LastResult.Reset()
}

// CPSR returns the current program status register.
func (c *Cpu) CPSR() registers.PSR { return c.cpsr }

// Mode returns the processor mode encoded in CPSR.
func (c *Cpu) Mode() registers.Mode { return c.cpsr.Mode() }

// Reg returns the architectural value of register i (0..15) as seen by the
// current mode.
func (c *Cpu) Reg(i int) uint32 {
	return c.R[registers.Physical(c.Mode(), i)]
}

// SetReg writes register i (0..15) as seen by the current mode.
func (c *Cpu) SetReg(i int, v uint32) {
	c.R[registers.Physical(c.Mode(), i)] = v
}

func (c *Cpu) pc() uint32      { return c.Reg(15) }
func (c *Cpu) setPC(v uint32)  { c.SetReg(15, v) }

// InstructionsExecutedTotal is the lifetime instruction-attempt count,
// monotonic between resets.
func (c *Cpu) InstructionsExecutedTotal() uint64 { return c.instExecutedTotal }

// Execute runs the fetch/decode/execute loop (§4.10) until
// inst_executed_in_current_call reaches limit, returning the number of
// instructions attempted this call. Zero limit returns immediately having
// attempted nothing.
func (c *Cpu) Execute(limit uint64) uint64 {
	c.instExecutedInCurrentCall = 0

	for c.instExecutedInCurrentCall < limit {
		c.step()
	}

	return c.instExecutedInCurrentCall
}

// step runs exactly one pass of the dispatch loop body (§4.10 steps 1-7).
func (c *Cpu) step() {
	c.LastResult.Reset()

	e := entry{
		mode:   c.Mode(),
		realPC: c.pc(),
		n:      c.cpsr.N(),
		z:      c.cpsr.Z(),
		c:      c.cpsr.C(),
		v:      c.cpsr.V(),
	}
	c.LastResult.Address = e.realPC
	c.LastResult.EnterMode = uint8(e.mode)

	word, abort := c.mem.FetchInstruction(e.realPC)
	if abort {
		c.raise(execution.Exception{
			Target:     registers.ABT,
			ReturnLink: e.realPC + 4,
			Vector:     execution.VectorPAbt,
		})
		c.tick()
		return
	}
	c.LastResult.Word = word

	cond := instructions.Condition((word >> 28) & 0xf)
	if cond == instructions.NV {
		c.LastResult.Unpredictable = execution.ReservedCondition
		c.raise(execution.Exception{
			Target:     registers.UND,
			ReturnLink: e.realPC + 4,
			Vector:     execution.VectorUND,
		})
		c.tick()
		return
	}

	if !instructions.Evaluate(cond, e.n, e.z, e.c, e.v) {
		c.LastResult.ConditionPassed = false
		c.LastResult.Outcome = execution.Continue
		c.LastResult.Final = true
		c.setPC(e.realPC + 4)
		c.tick()
		return
	}
	c.LastResult.ConditionPassed = true

	class := instructions.Decode(word)

	var outcome execution.Outcome
	var exc execution.Exception
	var unpred execution.Unpredictable

	switch class {
	case instructions.DataProcessing:
		outcome, exc, unpred = c.executeDataProcessing(e, word)
	case instructions.PSRTransfer:
		outcome, exc, unpred = c.executePSRTransfer(e, word)
	case instructions.Multiply:
		outcome, exc, unpred = c.executeMultiply(e, word)
	case instructions.MultiplyLong:
		outcome, exc, unpred = c.executeMultiplyLong(e, word)
	case instructions.SingleDataSwap:
		outcome, exc, unpred = c.executeSwap(e, word)
	case instructions.BranchExchange:
		outcome, exc, unpred = c.executeBX(e, word)
	case instructions.HalfwordTransfer:
		outcome, exc, unpred = c.executeHalfwordTransfer(e, word)
	case instructions.SingleDataTransfer:
		outcome, exc, unpred = c.executeSingleDataTransfer(e, word)
	case instructions.Branch:
		outcome, exc, unpred = c.executeBranch(e, word)
	case instructions.SoftwareInterrupt:
		outcome, exc = execution.Raise, execution.Exception{
			Target:     registers.SVC,
			ReturnLink: e.realPC + 4,
			Vector:     execution.VectorSWI,
		}
	default:
		// BlockDataTransfer, coprocessor rows, and plain Undefined all
		// land here: none of them are implemented by this core.
		outcome, exc = execution.Raise, execution.Exception{
			Target:     registers.UND,
			ReturnLink: e.realPC + 4,
			Vector:     execution.VectorUND,
		}
	}

	c.LastResult.Outcome = outcome
	c.LastResult.Exception = exc
	c.LastResult.Unpredictable = unpred
	c.LastResult.Final = true

	switch outcome {
	case execution.Continue:
		c.setPC(e.realPC + 4)
	case execution.Branched:
		// executor already wrote R15
	case execution.Raise:
		c.raise(exc)
	}

	c.tick()
}

func (c *Cpu) tick() {
	c.instExecutedTotal++
	c.instExecutedInCurrentCall++
}

// raise performs exception entry, §4.9. target USR/SYS is a host-level
// invariant violation: the dispatcher never constructs one since the
// vectors it raises (UND, SWI->SVC, PAbt->ABT, DAbt->ABT) are always
// banked modes, but the check stays here because raise is the one place
// every exception path converges.
func (c *Cpu) raise(exc execution.Exception) {
	if exc.Target == registers.USR || exc.Target == registers.SYS {
		logger.Logf("cpu", "exception raised against unbanked mode %s", exc.Target)
		panic("cpu: exception target is an unbanked mode")
	}

	spsrIdx, ok := registers.SPSRIndex(exc.Target)
	if !ok {
		panic("cpu: exception target has no SPSR bank")
	}

	oldCPSR := c.cpsr

	// R14_target must be set via the *new* mode's banking, so switch mode
	// first, stash return link and SPSR, then fix up the rest of CPSR.
	c.cpsr = oldCPSR.SetMode(exc.Target)
	c.SetReg(14, exc.ReturnLink)
	c.spsr[spsrIdx] = oldCPSR

	// bits [7:0] are reset to the base I/F/mode pattern: I is always set
	// on entry, F is set only for a FIQ target and cleared for every other
	// target, and any other low-byte bits (the reserved/T bit) are cleared.
	low := uint32(exc.Target) & 0x1f
	low |= 1 << 7
	if exc.Target == registers.FIQ {
		low |= 1 << 6
	}
	c.cpsr = registers.PSR(uint32(c.cpsr)&^0xff | low)

	c.setPC(exc.Vector)
}
