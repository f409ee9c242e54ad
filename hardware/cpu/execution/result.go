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

// Result records everything the dispatch loop learned about the
// instruction it just processed, snapshotted at instruction entry and
// filled in as decode/execute progress.
//
// A Result with Final false is still usable but incomplete: it is the
// state visible if, for example, the MMU fetch itself aborted before
// decode ever ran.
type Result struct {
	// PC at instruction entry, before any advance.
	Address uint32

	// the raw 32 bit instruction word, or 0 if the fetch aborted.
	Word uint32

	// the mode the CPU was in at instruction entry.
	EnterMode uint8

	// whether the condition field passed. a false here means the
	// instruction executed as an architectural NOP.
	ConditionPassed bool

	// the tagged outcome returned by the executor.
	Outcome Outcome

	// populated only when Outcome == Raise.
	Exception Exception

	// set when a reserved-unpredictable path was taken; NoUnpredictable
	// otherwise. Diagnostic only - the architectural behaviour is always
	// the one documented in §4.12 regardless of this field.
	Unpredictable Unpredictable

	// whether this Result has been fully populated.
	Final bool
}

// Reset nullifies all members of the Result, ready for reuse on the next
// instruction. The dispatch loop keeps one Result alive across the whole
// run rather than allocating one per instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Word = 0
	r.EnterMode = 0
	r.ConditionPassed = false
	r.Outcome = Continue
	r.Exception = Exception{}
	r.Unpredictable = NoUnpredictable
	r.Final = false
}
