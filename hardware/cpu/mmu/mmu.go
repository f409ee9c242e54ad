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

// Package mmu defines the collaborator the cpu package calls into for
// every fetch and data access, and a flat-RAM reference implementation of
// it. The real MMU - translation, permissions, caches, privileged-vs-user
// enforcement for LDRT/STRT - is explicitly out of scope for the core; it
// only needs something that can fetch a 32 bit instruction word and read
// or write 1/2/4 bytes, and that can signal an abort in band.
package mmu

// MMU is the memory collaborator required by the cpu package. Every data
// access method takes treatAsUser; FetchInstruction does not. The core sets
// treatAsUser only for the post-indexed write-back form (P=0, W=1) of a load
// or store, i.e. LDRT/STRT, so a real implementation can apply user-mode
// permissions even while the CPU executes privileged.
//
// A method's second return value reports whether the access aborted. On
// abort the first return value is undefined and must not be used; the
// core never inspects it.
type MMU interface {
	FetchInstruction(addr uint32) (word uint32, abort bool)

	ReadByte(addr uint32, treatAsUser bool) (value uint8, abort bool)
	ReadHalfword(addr uint32, treatAsUser bool) (value uint16, abort bool)
	ReadWord(addr uint32, treatAsUser bool) (value uint32, abort bool)

	WriteByte(addr uint32, value uint8, treatAsUser bool) (abort bool)
	WriteHalfword(addr uint32, value uint16, treatAsUser bool) (abort bool)
	WriteWord(addr uint32, value uint32, treatAsUser bool) (abort bool)
}
