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

// Package cpu implements a deterministic ARMv4 instruction interpreter:
// register banking, condition evaluation, the barrel shifter, the
// data-processing ALU, branch/BX/SWI/UND, the multiply family, MSR/MRS,
// load/store addressing (including LDRT/STRT and abort atomicity), the
// exception engine, and the fetch/decode/execute loop.
//
// The Cpu type owns the persistent architectural state (registers, CPSR,
// SPSR bank, instruction counters) and requires an mmu.MMU implementation
// to service fetches and data accesses. Construct one with New, bring it
// to a defined state with HWReset, then call Execute repeatedly:
//
//	c := cpu.New(mem)
//	c.HWReset()
//	attempted := c.Execute(1_000_000)
//
// Execute runs to completion for the requested quota; there is no
// internal threading, locking, or asynchronous cancellation. The caller
// controls how much work happens per call and can serialize the
// persistent state between calls with SaveState/LoadState.
//
// Memory/MMU translation, Thumb mode, coprocessors, FIQ/IRQ line sampling,
// and block data transfer (LDM/STM) are not implemented; encodings in
// those spaces are either routed to the abstract MMU collaborator or
// raised as the Undefined exception, matching the core's documented
// reserved-unpredictable policy.
package cpu
