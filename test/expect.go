// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
	"testing"
)

// id builds the prefix string from the optional tags given to the test
// functions.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, 0, len(tags))
	for _, tag := range tags {
		s = append(s, fmt.Sprintf("%v", tag))
	}
	return fmt.Sprintf("[%s] ", strings.Join(s, " "))
}

// expect judges value v for success according to its type. types without a
// defined success condition are a test fatality.
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	case int:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	default:
		t.Fatalf("%sunsupported type (%T) for success/failure testing", id(tags...), v)
	}

	return false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// In other words, the test does not want to succeed if the values are equal.
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' unexpectedly equals '%v'", id(tags...), v, v, unexpectedValue)
		return false
	}
	return true
}

// Number is a type constraint for the ExpectAbsorbedDifference function.
type Number interface {
	~int | ~int64 | ~uint64 | ~float32 | ~float64 | ~uint8 | ~uint16
}

// ExpectAbsorbedDifference is used to test that the difference between two
// values is no more than the given amount.
func ExpectAbsorbedDifference[T Number](t *testing.T, v T, expectedValue T, allowance T, tags ...any) bool {
	t.Helper()
	var diff T
	if v > expectedValue {
		diff = v - expectedValue
	} else {
		diff = expectedValue - v
	}
	if diff > allowance {
		t.Errorf("%sabsorbed difference test of type %T failed: '%v' is more than '%v' away from '%v'",
			id(tags...), v, v, allowance, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test for a value which indicates a 'successful'
// value for the type. See the package documentation for what counts as
// success for each supported type.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T (%v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. See the package documentation for what counts as
// failure for each supported type.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T (%v)", id(tags...), v, v)
		return false
	}
	return true
}

// ExpectImplements tests whether an instance is an implementation of type T.
func ExpectImplements[T comparable](t *testing.T, instance any, implements T, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		t.Errorf("%simplementation test failed: type %T does not implement %T", id(tags...), instance, implements)
		return false
	}
	return true
}
