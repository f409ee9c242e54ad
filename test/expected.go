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

package test

import (
	"reflect"
	"testing"
)

// Equate fails the test unless a and b are equal, by reflect.DeepEqual.
func Equate(t testing.TB, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("not equal: %v != %v", a, b)
	}
}

// ExpectEquality fails the test unless a and b are equal.
func ExpectEquality(t testing.TB, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
}

// ExpectInequality fails the test unless a and b are unequal.
func ExpectInequality(t testing.TB, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("expected %v to not equal %v", a, b)
	}
}

// ExpectApproximate fails the test unless a and b are within tolerance of
// one another, expressed as a fraction of b (e.g. tolerance 0.1 allows up to
// 10% difference).
func ExpectApproximate(t testing.TB, a, b interface{}, tolerance float64) {
	t.Helper()

	af, aok := toFloat64(a)
	bf, bok := toFloat64(b)
	if !aok || !bok {
		t.Fatalf("ExpectApproximate: non-numeric argument: %v, %v", a, b)
		return
	}

	diff := af - bf
	if diff < 0 {
		diff = -diff
	}
	allowed := tolerance * bf
	if allowed < 0 {
		allowed = -allowed
	}
	if diff > allowed {
		t.Fatalf("expected %v to be within %v%% of %v", a, tolerance*100, b)
	}
}

// ExpectFailure fails the test unless v represents failure: a false bool or
// a non-nil error.
func ExpectFailure(t testing.TB, v interface{}) {
	t.Helper()
	if !isFailure(v) {
		t.Fatalf("expected failure, got: %v", v)
	}
}

// ExpectSuccess fails the test if v represents failure: a false bool or a
// non-nil error. Any other value, including nil, passes.
func ExpectSuccess(t testing.TB, v interface{}) {
	t.Helper()
	if isFailure(v) {
		t.Fatalf("expected success, got: %v", v)
	}
}

// ExpectedFailure is an alias for ExpectFailure, kept for callers that
// spell it the other way.
func ExpectedFailure(t testing.TB, v interface{}) {
	t.Helper()
	ExpectFailure(t, v)
}

// ExpectedSuccess is an alias for ExpectSuccess, kept for callers that
// spell it the other way.
func ExpectedSuccess(t testing.TB, v interface{}) {
	t.Helper()
	ExpectSuccess(t, v)
}

func isFailure(v interface{}) bool {
	if v == nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return !x
	case error:
		return x != nil
	}
	return false
}

func toFloat64(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
