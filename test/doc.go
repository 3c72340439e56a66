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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Expect group of functions mark the test as having failed but allow it
// to continue. The Demand group of functions halt the test immediately. The
// Demand functions should be used when subsequent test steps depend on the
// tested value being correct.
//
// Success and failure values are judged by type: a bool succeeds when true; an
// error succeeds when nil. Numeric values succeed when non-zero, in the manner
// of C style conditionals.
//
// All functions accept optional trailing tags which are printed alongside any
// test failure. Useful when the same expectation is made inside a loop.
package test
