// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import "testing"

func TestFindSubcommand(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		want   string
		wantOK bool
	}{
		{"simple", []string{"prog", "build"}, "build", true},
		{"option consumes next token", []string{"prog", "-x", "value", "build"}, "build", true},
		{"program only", []string{"prog"}, "", false},
		{"empty argv", nil, "", false},
		{"lone option", []string{"prog", "-h"}, "", false},
		{"option and its value only", []string{"prog", "--config", "helena.toml"}, "", false},
		{"long option consumes next token", []string{"prog", "--config", "helena.toml", "build", "extra"}, "build", true},
		{"value-less flag swallows subcommand", []string{"prog", "-v", "build"}, "", false},
		{"value-less flag then subcommand later", []string{"prog", "-v", "build", "run"}, "run", true},
		{"consecutive options", []string{"prog", "-a", "-b", "value", "build"}, "build", true},
		{"leading spaces trimmed", []string{"prog", "   build"}, "build", true},
		{"spaced option", []string{"prog", "  -x", "value", "build"}, "build", true},
		{"blank arguments skipped", []string{"prog", "", "   ", "build"}, "build", true},
		{"blank between option and token", []string{"prog", "-x", " ", "build"}, "build", true},
		{"first of several", []string{"prog", "build", "test"}, "build", true},
		{"double dash is an option", []string{"prog", "--", "build", "run"}, "run", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindSubcommand(tt.argv)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("FindSubcommand(%q) = (%q, %v), want (%q, %v)", tt.argv, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindSubcommandDoesNotModifyArgv(t *testing.T) {
	argv := []string{"prog", "  build"}
	if _, ok := FindSubcommand(argv); !ok {
		t.Fatalf("FindSubcommand found nothing")
	}
	if argv[1] != "  build" {
		t.Fatalf("argv[1] = %q, want it unchanged", argv[1])
	}
}
