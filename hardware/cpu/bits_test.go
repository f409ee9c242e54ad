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
	"math/rand"
	"testing"

	"github.com/jetsetilly/arm4/test"
)

func TestBitsExtraction(t *testing.T) {
	test.ExpectEquality(t, bits(0xf0, 7, 4), uint32(0xf))
	test.ExpectEquality(t, bits(0xf0, 3, 0), uint32(0x0))
	test.ExpectEquality(t, bits(0xffffffff, 31, 0), uint32(0xffffffff))
}

// Invariant 6: bits(u, hi, lo) < 2^(hi-lo+1) for every valid (u, hi, lo).
func TestBitsInvariantBound(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		u := r.Uint32()
		lo := r.Intn(32)
		hi := lo + r.Intn(32-lo)
		v := bits(u, hi, lo)
		bound := uint64(1) << uint(hi-lo+1)
		if uint64(v) >= bound {
			t.Fatalf("bits(%#x, %d, %d) = %#x, want < %#x", u, hi, lo, v, bound)
		}
	}
}

func TestAsrSignExtends(t *testing.T) {
	test.ExpectEquality(t, asr(0x80000000, 4), uint32(0xf8000000))
	test.ExpectEquality(t, asr(0x7fffffff, 4), uint32(0x07ffffff))
}

func TestRorWraps(t *testing.T) {
	test.ExpectEquality(t, ror(0x00000001, 1), uint32(0x80000000))
	test.ExpectEquality(t, ror(0x80000000, 1), uint32(0x40000000))
}

func TestSignExtend(t *testing.T) {
	test.ExpectEquality(t, signExtend(0x800, 12), uint32(0xfffff800))
	test.ExpectEquality(t, signExtend(0x7ff, 12), uint32(0x000007ff))
}

func TestAddSubOverflowPredicates(t *testing.T) {
	test.Equate(t, addUOvf(0xffffffff, 1, false), true)
	test.Equate(t, addUOvf(0xfffffffe, 1, false), false)
	test.Equate(t, subUOvf(0, 1), true)
	test.Equate(t, subUOvf(1, 1), false)
	test.Equate(t, addSOvf(0x7fffffff, 1, false), true)
	test.Equate(t, subSOvf(0x80000000, 1, true), true)
}
