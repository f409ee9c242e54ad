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

package execution

// Unpredictable labels which, if any, reserved-unpredictable construct
// (§4.12) this instruction hit. The core's behaviour in every case is
// fixed and documented; this label exists purely so a host can observe,
// log or count these paths without the core itself treating them as
// errors.
type Unpredictable string

const (
	NoUnpredictable Unpredictable = ""

	// cond field was 0b1111; treated as UND per ARMv4.
	ReservedCondition Unpredictable = "reserved condition field"

	// S-bit data-processing op with Rd=R15 executed in USR/SYS mode: no
	// flag update, no CPSR restore from SPSR.
	SBitR15UserMode Unpredictable = "S-bit writeback to r15 in user mode"

	// register-specified shift amount read from R15.
	ShiftAmountFromPC Unpredictable = "shift amount register is r15"

	// MSR attempted an SPSR write, or a CPSR field write beyond the flag
	// byte, from user mode; both are silently dropped/restricted.
	MSRUserModeRestricted Unpredictable = "MSR restricted in user mode"
)
