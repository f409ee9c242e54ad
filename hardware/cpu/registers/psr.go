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

package registers

// PSR bit positions. Bits [27:8] are architecturally defined but opaque to
// this core; they are preserved verbatim across explicit field writes.
const (
	bitN    = 31
	bitZ    = 30
	bitC    = 29
	bitV    = 28
	bitI    = 7
	bitF    = 6
	modeLen = 5
)

// PSR is a 32 bit Current/Saved Program Status Register. It is a plain
// uint32 dressed up with named accessors rather than a struct of separate
// booleans, because the data-processing executor and the MSR/MRS transfer
// logic both need the whole word (flag field or mode-preserving field
// writes) as often as they need individual bits.
type PSR uint32

// N reports the negative (bit 31) flag.
func (p PSR) N() bool { return p&(1<<bitN) != 0 }

// Z reports the zero (bit 30) flag.
func (p PSR) Z() bool { return p&(1<<bitZ) != 0 }

// C reports the carry (bit 29) flag.
func (p PSR) C() bool { return p&(1<<bitC) != 0 }

// V reports the overflow (bit 28) flag.
func (p PSR) V() bool { return p&(1<<bitV) != 0 }

// I reports the IRQ disable (bit 7) flag.
func (p PSR) I() bool { return p&(1<<bitI) != 0 }

// F reports the FIQ disable (bit 6) flag.
func (p PSR) F() bool { return p&(1<<bitF) != 0 }

// Mode extracts the mode field, bits [4:0].
func (p PSR) Mode() Mode { return Mode(uint32(p) & 0x1f) }

// SetNZCV returns a PSR with the flag bits replaced and everything else
// preserved.
func (p PSR) SetNZCV(n, z, c, v bool) PSR {
	r := uint32(p) &^ (uint32(0xf) << bitV)
	if n {
		r |= 1 << bitN
	}
	if z {
		r |= 1 << bitZ
	}
	if c {
		r |= 1 << bitC
	}
	if v {
		r |= 1 << bitV
	}
	return PSR(r)
}

// SetMode returns a PSR with the mode field replaced.
func (p PSR) SetMode(m Mode) PSR {
	return PSR(uint32(p)&^0x1f | uint32(m)&0x1f)
}

// SetI returns a PSR with the IRQ disable bit set or cleared.
func (p PSR) SetI(v bool) PSR {
	if v {
		return PSR(uint32(p) | 1<<bitI)
	}
	return PSR(uint32(p) &^ (1 << bitI))
}

// SetF returns a PSR with the FIQ disable bit set or cleared.
func (p PSR) SetF(v bool) PSR {
	if v {
		return PSR(uint32(p) | 1<<bitF)
	}
	return PSR(uint32(p) &^ (1 << bitF))
}

// WithFlagField returns a PSR whose condition flags ([31:28], the field
// the MSR executor writes when inst[16] is clear) are replaced by the top
// nibble of val, everything else preserved. This is the "flags-only" MSR
// form, and is also the only CPSR write a USR-mode MSR is permitted.
func (p PSR) WithFlagField(val uint32) PSR {
	return PSR(uint32(p)&0x0fffffff | val&0xf0000000)
}
