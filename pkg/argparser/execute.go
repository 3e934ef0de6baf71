// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Status is the outcome of ExecuteDefault.
type Status int

const (
	// Executed means a built-in option ran; the program may exit with
	// code zero.
	Executed Status = iota
	// Undescribed means a built-in option was given but no description is
	// registered for the program. Describe must be called first.
	Undescribed
	// None means the command line has no built-in option and the program
	// should handle it itself.
	None
)

func (s Status) String() string {
	switch s {
	case Executed:
		return "executed"
	case Undescribed:
		return "undescribed"
	case None:
		return "none"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// defaultOptions are understood by every program. Their index selects the
// behavior in runDefault.
var defaultOptions = []Option{
	{LongName: "help", ShortName: 'h', Documentation: "Provide assistance on how to use the program."},
}

const helpOption = 0

// DefaultOptions returns the options handled by ExecuteDefault.
func DefaultOptions() []Option {
	return slices.Clone(defaultOptions)
}

// ExecuteDefault handles argv if it contains a built-in option. argv[0] is
// the program name as registered with Describe; a path is also matched by
// its base name.
func (r *Registry) ExecuteDefault(argv []string) Status {
	if len(argv) == 0 {
		return None
	}
	index, ok := scanDefaultOptions(argv)
	if !ok {
		return None
	}
	d, ok := r.lookupProgram(argv[0])
	if !ok {
		return Undescribed
	}
	r.runDefault(index, d)
	return Executed
}

// scanDefaultOptions returns the index in defaultOptions of the first
// built-in option in argv.
func scanDefaultOptions(argv []string) (int, bool) {
	fs := pflag.NewFlagSet(argv[0], pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsAllowlist.UnknownFlags = true

	byName := make(map[string]int, len(defaultOptions))
	for i, o := range defaultOptions {
		fs.BoolP(o.LongName, string(o.ShortName), false, o.Documentation)
		byName[o.LongName] = i
	}

	found := -1
	// Returning an error from the callback stops the scan at the first hit.
	_ = fs.ParseAll(expandLongPrefixes(argv[1:]), func(flag *pflag.Flag, _ string) error {
		i, ok := byName[flag.Name]
		if !ok {
			return nil
		}
		found = i
		return errStopScan
	})
	return found, found >= 0
}

var errStopScan = errors.New("default option found")

// expandLongPrefixes rewrites "--he" to "--help" when the name is an
// unambiguous prefix of exactly one built-in option. Arguments after "--"
// are left alone.
func expandLongPrefixes(args []string) []string {
	out := slices.Clone(args)
	for i, arg := range out {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
			continue
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")
		if long, ok := uniqueDefaultOption(name); ok {
			out[i] = "--" + long
			if hasValue {
				out[i] += "=" + value
			}
		}
	}
	return out
}

func uniqueDefaultOption(prefix string) (string, bool) {
	match := ""
	for _, o := range defaultOptions {
		if o.LongName == prefix {
			return o.LongName, true
		}
		if strings.HasPrefix(o.LongName, prefix) {
			if match != "" {
				return "", false
			}
			match = o.LongName
		}
	}
	return match, match != ""
}

func (r *Registry) lookupProgram(program string) (Description, bool) {
	if d, ok := r.Lookup(program); ok {
		return d, true
	}
	if base := filepath.Base(program); base != program {
		return r.Lookup(base)
	}
	return Description{}, false
}

func (r *Registry) runDefault(index int, d Description) {
	switch index {
	case helpOption:
		r.help(d)
	}
}

func (r *Registry) help(d Description) {
	w := r.stdout()
	fmt.Fprintf(w, "%s %s\n", r.Colors.Heading("OVERVIEW:"), d.Overview)
	fmt.Fprintf(w, "%s %s\n", r.Colors.Heading("USAGE:"), Usage(d))
}

// Usage returns the one-line usage banner of d, for example
// "helena [-hv] <subcommand>".
func Usage(d Description) string {
	var b strings.Builder
	b.WriteString(d.Name)
	opts := append(DefaultOptions(), d.Options...)
	if spec := ShortOptions(opts); spec != "" {
		fmt.Fprintf(&b, " [-%s]", spec)
	}
	if len(d.Subcommands) > 0 {
		b.WriteString(" <subcommand>")
	}
	return b.String()
}
