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

package curated_test

import (
	"errors"
	"testing"

	"github.com/hexkey/gopher8/curated"
	"github.com/hexkey/gopher8/test"
)

const testPattern = "test: %v"

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: foo")
	test.ExpectEquality(t, e.Error(), "error: foo")

	// wrapping an error in the same pattern part causes the duplicate part
	// to be dropped from the message
	f := curated.Errorf("error: %v", e)
	test.ExpectEquality(t, f.Error(), "error: foo")
}

func TestMatching(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "some other pattern"))

	// a wrapped error matches with Has() but not with Is()
	f := curated.Errorf("fatal: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, "fatal: %v"))

	// uncurated errors never match
	g := errors.New("uncurated")
	test.ExpectFailure(t, curated.IsAny(g))
	test.ExpectFailure(t, curated.Is(g, testPattern))
	test.ExpectFailure(t, curated.Has(g, testPattern))

	// nor does the nil error
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}
