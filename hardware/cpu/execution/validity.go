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

import "fmt"

// IsValid checks whether a Result is internally consistent. The dispatch
// loop doesn't call this - it would cost a branch per instruction for no
// benefit - but it's useful in tests and in any debugging harness built on
// top of this package.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: result not finalised")
	}

	if !r.ConditionPassed && r.Outcome != Continue {
		return fmt.Errorf("execution: instruction failed its condition but outcome is %v, not Continue", r.Outcome)
	}

	if r.Outcome == Raise {
		if r.Exception.Vector == 0 {
			return fmt.Errorf("execution: Raise outcome with zero exception vector")
		}
	} else if r.Exception != (Exception{}) {
		return fmt.Errorf("execution: exception fields populated without a Raise outcome")
	}

	return nil
}
