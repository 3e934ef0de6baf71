// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparser lets a toolchain program describe itself once and then
// get common Unix command-line behavior for free.
//
// A program registers a Description (name, overview, options and
// subcommands) with a Registry, asks the Registry to perform default
// execution of its command line, and finally asks for the subcommand token
// to route to its own logic:
//
//	reg := argparser.NewRegistry()
//	err := reg.Describe(argparser.Description{
//	    Name:     "helena",
//	    Overview: "Builds the Helena language from its source.",
//	    Subcommands: []argparser.Subcommand{
//	        {Name: "build", Documentation: "Builds Helena from source."},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch reg.ExecuteDefault(os.Args) {
//	case argparser.Executed:
//	    os.Exit(0)
//	case argparser.Undescribed:
//	    os.Exit(1)
//	}
//	if sub, ok := argparser.FindSubcommand(os.Args); ok && sub == "build" {
//	    // ...
//	}
//
// # Default execution
//
// ExecuteDefault scans the command line GNU-style for the built-in options
// (currently -h/--help). Unknown options are tolerated, options may appear
// after positional arguments and "--" ends the scan. The first built-in
// option found runs against the Description registered for argv[0].
//
// # Subcommands
//
// FindSubcommand returns the first argument that is neither an option nor the
// argument right after an option. Because the scanner has no knowledge of
// which options take values, the token after a value-less flag is always
// treated as that flag's value:
//
//	argparser.FindSubcommand([]string{"prog", "-x", "value", "build"}) // "build", true
//	argparser.FindSubcommand([]string{"prog", "-v", "build"})          // "", false
//
// Programs that know their own flags should strip them first and pass the
// remaining arguments to FindSubcommand.
package argparser
