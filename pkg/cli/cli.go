// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"strings"

	"github.com/helena-lang/helena/pkg/argparser"
	"github.com/shayne/yargs"
)

const CommandBuild = "build"

type GlobalFlags struct {
	Config  string
	Verbose bool
}

type BuildFlags struct {
	BuildDir  string
	CMake     string
	Generator string
	Jobs      int
	DryRun    bool
}

type globalFlagsParsed struct {
	Config  string `flag:"config" short:"c" help:"Use this helena.toml instead of searching for one"`
	Verbose bool   `flag:"verbose" short:"v" help:"Print debug logs"`
}

type buildFlagsParsed struct {
	BuildDir  string `flag:"build-dir" short:"B" help:"Directory to configure and build in"`
	CMake     string `flag:"cmake" help:"Path to the cmake executable"`
	Generator string `flag:"generator" short:"G" help:"CMake generator"`
	Jobs      int    `flag:"jobs" short:"j" help:"Parallel build jobs"`
	DryRun    bool   `flag:"dry-run" short:"n" help:"Print the commands instead of running them"`
}

// GlobalOptions describes the global flags as argparser options.
func GlobalOptions() []argparser.Option {
	return optionsFromStruct(globalFlagsParsed{})
}

// ParseGlobal removes the global flags from args, wherever they appear, and
// returns them with the remaining arguments. Unknown flags are kept.
func ParseGlobal(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	flags := GlobalFlags{
		Config:  result.Flags.Config,
		Verbose: result.Flags.Verbose,
	}
	return flags, result.RemainingArgs, nil
}

// ParseBuild parses the arguments following the build subcommand. Arguments
// after "--" are returned untouched for cmake.
func ParseBuild(args []string) (BuildFlags, []string, error) {
	parseArgs, extraArgs := splitArgsAtDoubleDash(args)
	result, err := yargs.ParseFlags[buildFlagsParsed](parseArgs)
	if err != nil {
		return BuildFlags{}, nil, err
	}
	if len(result.Args) > 0 {
		return BuildFlags{}, nil, &yargs.InvalidArgsError{Expected: "0", Got: len(result.Args), SubCommand: CommandBuild}
	}
	flags := BuildFlags{
		BuildDir:  result.Flags.BuildDir,
		CMake:     result.Flags.CMake,
		Generator: result.Flags.Generator,
		Jobs:      result.Flags.Jobs,
		DryRun:    result.Flags.DryRun,
	}
	return flags, extraArgs, nil
}

func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

// optionsFromStruct builds options from `flag`, `short` and `help` tags.
// Fields without a single-character short tag are left out.
func optionsFromStruct(v any) []argparser.Option {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var opts []argparser.Option
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		short := field.Tag.Get("short")
		if len(short) != 1 {
			continue
		}
		name := field.Tag.Get("flag")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		opts = append(opts, argparser.Option{
			LongName:      name,
			ShortName:     short[0],
			Documentation: field.Tag.Get("help"),
		})
	}
	return opts
}
