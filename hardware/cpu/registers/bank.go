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

// Package registers models the ARMv4 register file: the flat 31-slot
// physical store, the mode-to-bank-to-physical lookup that gives every
// processor mode its own banked view of r0-r15, and the PSR bit layout
// shared by CPSR and the SPSR bank.
package registers

// Mode is the processor mode encoded in the low 5 bits of CPSR.
type Mode uint32

// Processor modes, as encoded in PSR bits [4:0].
const (
	USR Mode = 0x10
	FIQ Mode = 0x11
	IRQ Mode = 0x12
	SVC Mode = 0x13
	ABT Mode = 0x17
	UND Mode = 0x1b
	SYS Mode = 0x1f
)

func (m Mode) String() string {
	switch m {
	case USR:
		return "USR"
	case FIQ:
		return "FIQ"
	case IRQ:
		return "IRQ"
	case SVC:
		return "SVC"
	case ABT:
		return "ABT"
	case UND:
		return "UND"
	case SYS:
		return "SYS"
	}
	return "???"
}

// IsPrivileged returns true unless the mode is USR. SYS is privileged
// despite sharing the USR register bank.
func (m Mode) IsPrivileged() bool {
	return m != USR
}

// bank identifies one of the six distinct register banks. USR and SYS
// share a bank; the other five modes each own one.
type bank int

const (
	bankUserSys bank = iota
	bankSVC
	bankABT
	bankUND
	bankIRQ
	bankFIQ
	numBanks
)

// modeToBank maps each of the seven named 5-bit modes to a bank. It is keyed
// on the whole Mode value, not on its low 4 bits: a value outside the named
// set has no entry even when its low 4 bits match a named mode, so Physical
// resolves it as USR/SYS and SPSRIndex reports no SPSR for it.
var modeToBank = map[Mode]bank{
	USR: bankUserSys,
	SYS: bankUserSys,
	SVC: bankSVC,
	ABT: bankABT,
	UND: bankUND,
	IRQ: bankIRQ,
	FIQ: bankFIQ,
}

// physical gives, for each bank, the physical R[] slot backing r0..r15 in
// that bank. This table is the sole source of truth for register access;
// nothing else in this package (or the cpu package) should reimplement it.
var physical = [numBanks][16]int{
	bankUserSys: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	bankSVC:     {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16, 17, 15},
	bankABT:     {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 18, 19, 15},
	bankUND:     {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 20, 21, 15},
	bankIRQ:     {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 22, 23, 15},
	bankFIQ:     {0, 1, 2, 3, 4, 5, 6, 7, 24, 25, 26, 27, 28, 29, 30, 15},
}

// Physical resolves the architectural register index i (0..15) in the
// given mode to its physical slot in the 31-entry backing store.
//
// R15 always resolves to physical slot 15 regardless of mode, matching
// the reference table: FIQ shares only r0-r7 and r15 with user, the other
// privileged modes share r0-r12 and r15 with user.
func Physical(m Mode, i int) int {
	b, ok := modeToBank[m]
	if !ok {
		// an unrecognised mode value behaves as USR/SYS banking; the CPU
		// never constructs a Mode outside the named set so this path is
		// unreachable in practice.
		b = bankUserSys
	}
	return physical[b][i]
}

// SPSRIndex returns the SPSR slot (1..5) owned by mode m, and false for
// USR/SYS which have no SPSR of their own. Slot 0 is left unused: the bank
// enumeration that assigns slots 1-5 to SVC/ABT/UND/IRQ/FIQ naturally
// leaves the shared user/sys bank (0) without a counterpart.
func SPSRIndex(m Mode) (int, bool) {
	b, ok := modeToBank[m]
	if !ok || b == bankUserSys {
		return 0, false
	}
	return int(b), true
}
