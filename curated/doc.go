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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like the
// Errorf() function in the fmt package except that the pattern string is
// remembered and can be matched against later with the Is() and Has()
// functions. For example:
//
//	e := curated.Errorf("memory: address out of range [%#04x]", address)
//
//	if curated.Is(e, "memory: address out of range [%#04x]") {
//		fmt.Println("true")
//	}
//
// Has() is similar to Is() but checks for the pattern anywhere in the error
// chain, rather than just the outermost error.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Or put another way, it differentiates errors this project has curated
// from errors that have bubbled up from some other package.
//
// The Error() function implementation normalises the message chain, removing
// duplicate adjacent parts. Parts are the sub-strings separated by ': ', as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
// The practical advantage is that wrapping an error in the same pattern at
// every level of the call stack does not produce messages like:
//
//	memory: memory: address out of range
//
// Sentinel patterns should be stored as const strings in the package that
// raises them, suitably named and commented.
package curated
