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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides support for program modes (and sub-modes) in addition
// to flags. A mode is specified on the command line as a bare argument and
// each mode can carry its own set of flags.
//
// The basic pattern of use is to call NewArgs() with the command line
// arguments, declare the available sub-modes and flags, and then call Parse().
// The process repeats, with a call to NewMode(), for every layer of sub-modes
// the program supports.
package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments for programs
// that divide their functionality into modes. The Output field should be
// specified before calling Parse() or you will not see any help messages.
type Modes struct {
	// where to print help messages. defaults to no output at all
	Output io.Writer

	// the underlying flagset. renewed on every call to NewArgs() and
	// NewMode(). it should never be parsed directly, Parse() handles that
	flags *flag.FlagSet

	// the argument list as given to NewArgs(). argsIdx advances past any
	// sub-mode arguments consumed by Parse()
	args    []string
	argsIdx int

	// the sub-modes declared for the next call to Parse()
	subModes []string

	// the sequence of sub-modes encountered over successive calls to Parse().
	// never reset
	path []string

	// some modes benefit from a longer explanation than the flag summary
	additionalHelp string

	// whether Parse() has been called since the last NewArgs()/NewMode()
	parsed bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recent mode to be encountered by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing, separated by the
// mode separator.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes instance with a list of arguments, os.Args[1:]
// being the most obvious source.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// a fresh argument list implies a fresh mode
	md.NewMode()
}

// NewMode prepares the Modes instance for a new round of sub-mode and flag
// declarations. Flags declared before the call are forgotten.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp adds a verbose help text to be displayed after the flag
// summary.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since the most
// recent call to NewArgs() or NewMode(). A Modes instance is considered to be
// Parsed() even if Parse() resulted in an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were declared
	// before the call to Parse() then the Mode() function says which one was
	// selected.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed to the Output field.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the current layer of arguments. Help requests are honoured
// automatically, with the text printed to the Output field. The returned
// ParseResult indicates how the program should proceed.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	// parse under a capturing writer so that help output can be decorated
	// with the mode path and sub-mode list
	hlp := &helpWriter{}
	md.flags.SetOutput(hlp)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hlp.write(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag. if sub-modes have been declared then the
		// default sub-mode absorbs the error, leaving the unparsed flags for
		// the next layer. without sub-modes it is a genuine error
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
	} else if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// the first sub-mode in the list is the default, used when the
		// argument matches none of the declared sub-modes
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that are not flags or a recognised sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is not a flag or a recognised
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes declares the sub-modes to be recognised by the next call to
// Parse(). The first sub-mode in the list is the default, selected when none
// of the others match.
//
// Sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
