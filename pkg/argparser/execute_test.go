// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/helena-lang/helena/pkg/tui"
)

func newDemoRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	reg := NewRegistry()
	reg.Stdout = &out
	err := reg.Describe(Description{
		Name:     "demo",
		Overview: "Demonstrates default execution.",
		Subcommands: []Subcommand{
			{Name: "build", Documentation: "Builds things."},
		},
	})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	return reg, &out
}

func TestExecuteDefaultUndescribed(t *testing.T) {
	var out bytes.Buffer
	reg := NewRegistry()
	reg.Stdout = &out
	if got := reg.ExecuteDefault([]string{"demo", "--help"}); got != Undescribed {
		t.Fatalf("ExecuteDefault = %v, want %v", got, Undescribed)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestExecuteDefaultZeroRegistry(t *testing.T) {
	var reg Registry
	if got := reg.ExecuteDefault([]string{"demo", "-h"}); got != Undescribed {
		t.Fatalf("ExecuteDefault = %v, want %v", got, Undescribed)
	}
}

func TestExecuteDefaultHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			reg, out := newDemoRegistry(t)
			if got := reg.ExecuteDefault([]string{"demo", flag}); got != Executed {
				t.Fatalf("ExecuteDefault = %v, want %v", got, Executed)
			}
			want := "OVERVIEW: Demonstrates default execution.\nUSAGE: demo [-h] <subcommand>\n"
			if out.String() != want {
				t.Fatalf("output = %q, want %q", out.String(), want)
			}
		})
	}
}

func TestExecuteDefaultNone(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"subcommand only", []string{"demo", "build"}},
		{"program only", []string{"demo"}},
		{"empty argv", nil},
		{"unknown flags", []string{"demo", "--verbose", "-x", "build"}},
		{"help after terminator", []string{"demo", "--", "--help"}},
		{"help as subcommand", []string{"demo", "help"}},
		{"longer than help", []string{"demo", "--helpful"}},
		{"abbreviation after terminator", []string{"demo", "--", "--he"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, out := newDemoRegistry(t)
			if got := reg.ExecuteDefault(tt.argv); got != None {
				t.Fatalf("ExecuteDefault(%q) = %v, want %v", tt.argv, got, None)
			}
			if out.Len() != 0 {
				t.Fatalf("unexpected output %q", out.String())
			}
		})
	}
}

func TestExecuteDefaultFindsHelpAnywhere(t *testing.T) {
	tests := [][]string{
		{"demo", "build", "--help"},
		{"demo", "--verbose", "--help"},
		{"demo", "-x", "value", "-h"},
		{"demo", "build", "-h", "extra"},
		{"demo", "--he"},
		{"demo", "build", "--h"},
		{"demo", "--verbose", "--hel"},
	}
	for _, argv := range tests {
		reg, out := newDemoRegistry(t)
		if got := reg.ExecuteDefault(argv); got != Executed {
			t.Errorf("ExecuteDefault(%q) = %v, want %v", argv, got, Executed)
			continue
		}
		if !strings.Contains(out.String(), "Demonstrates default execution.") {
			t.Errorf("ExecuteDefault(%q) output = %q, missing overview", argv, out.String())
		}
	}
}

func TestExpandLongPrefixes(t *testing.T) {
	args := []string{"--he", "--hel=true", "--verbose", "-h", "--", "--he"}
	got := expandLongPrefixes(args)
	want := []string{"--help", "--help=true", "--verbose", "-h", "--", "--he"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("expandLongPrefixes(%q) = %q, want %q", args, got, want)
	}
	if args[0] != "--he" {
		t.Fatalf("args[0] = %q, want it unchanged", args[0])
	}
}

func TestExecuteDefaultProgramMismatch(t *testing.T) {
	reg, out := newDemoRegistry(t)
	if got := reg.ExecuteDefault([]string{"other", "--help"}); got != Undescribed {
		t.Fatalf("ExecuteDefault = %v, want %v", got, Undescribed)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestExecuteDefaultMatchesBaseName(t *testing.T) {
	reg, out := newDemoRegistry(t)
	if got := reg.ExecuteDefault([]string{"/usr/local/bin/demo", "--help"}); got != Executed {
		t.Fatalf("ExecuteDefault = %v, want %v", got, Executed)
	}
	if !strings.HasPrefix(out.String(), "OVERVIEW: ") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestExecuteDefaultUsesFirstRegistration(t *testing.T) {
	reg, out := newDemoRegistry(t)
	if err := reg.Describe(Description{Name: "demo", Overview: "Second."}); err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	reg.ExecuteDefault([]string{"demo", "-h"})
	if strings.Contains(out.String(), "Second.") {
		t.Fatalf("output = %q, want first registration", out.String())
	}
}

func TestExecuteDefaultColoredHeadings(t *testing.T) {
	reg, out := newDemoRegistry(t)
	reg.Colors = tui.Colorizer{Enabled: true}
	reg.ExecuteDefault([]string{"demo", "--help"})
	if !strings.Contains(out.String(), tui.ColorBold+"OVERVIEW:"+tui.ColorReset) {
		t.Fatalf("output = %q, want bold heading", out.String())
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		d    Description
		want string
	}{
		{
			name: "name only",
			d:    Description{Name: "demo"},
			want: "demo [-h]",
		},
		{
			name: "options and subcommands",
			d: Description{
				Name: "helena",
				Options: []Option{
					{LongName: "verbose", ShortName: 'v'},
					{LongName: "config", ShortName: 'c'},
				},
				Subcommands: []Subcommand{{Name: "build"}},
			},
			want: "helena [-hvc] <subcommand>",
		},
		{
			name: "declared option reuses built-in short name",
			d: Description{
				Name:    "demo",
				Options: []Option{{LongName: "host", ShortName: 'h'}},
			},
			want: "demo [-h]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Usage(tt.d); got != tt.want {
				t.Fatalf("Usage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		Executed:    "executed",
		Undescribed: "undescribed",
		None:        "none",
		Status(9):   "Status(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestDefaultOptionsIsCopy(t *testing.T) {
	opts := DefaultOptions()
	opts[0].LongName = "changed"
	if DefaultOptions()[0].LongName != "help" {
		t.Fatalf("DefaultOptions returned shared storage")
	}
}
