// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/helena-lang/helena/pkg/argparser"
	"github.com/helena-lang/helena/pkg/cli"
	"github.com/helena-lang/helena/pkg/cmdutil"
	"github.com/helena-lang/helena/pkg/helena"
	"github.com/helena-lang/helena/pkg/tui"
	"github.com/shayne/yargs"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	reg := &argparser.Registry{Stdout: stdout, Colors: tui.NewColorizer(stdout)}
	if err := helena.Describe(reg); err != nil {
		printError(stderr, err)
		return exitError
	}
	switch reg.ExecuteDefault(argv) {
	case argparser.Executed:
		return exitOK
	case argparser.Undescribed:
		return exitError
	}

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	global, rest, err := cli.ParseGlobal(args)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "helena"})
	if global.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := dispatch(ctx, argv[0], global, rest, stdout, stderr, logger); err != nil {
		printError(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func dispatch(ctx context.Context, program string, global cli.GlobalFlags, rest []string, stdout, stderr io.Writer, logger *log.Logger) error {
	sub, ok := argparser.FindSubcommand(append([]string{program}, rest...))
	if !ok {
		return fmt.Errorf("%w: missing subcommand, see %s --help", errUsage, program)
	}
	i := subcommandIndex(rest)
	if strings.HasPrefix(strings.TrimLeft(rest[i], " "), "-") {
		return fmt.Errorf("%w: unknown flag %q", errUsage, rest[i])
	}
	switch sub {
	case cli.CommandBuild:
		return runBuild(ctx, global, rest[i+1:], stdout, stderr, logger)
	}
	return fmt.Errorf("%w: unknown subcommand %q", errUsage, sub)
}

// subcommandIndex returns the index of the first argument that is not
// blank.
func subcommandIndex(args []string) int {
	for i, arg := range args {
		if strings.TrimLeft(arg, " ") != "" {
			return i
		}
	}
	return -1
}

func runBuild(ctx context.Context, global cli.GlobalFlags, args []string, stdout, stderr io.Writer, logger *log.Logger) error {
	flags, extra, err := cli.ParseBuild(args)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, path, err := helena.ResolveConfig(cwd, global.Config)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	cfg = cfg.WithFlags(flags)
	logger.Debug("building", "source", cwd, "build_dir", cfg.BuildDir, "cmake", cfg.CMake)

	r := &cmdutil.Runner{
		Stdout: stdout,
		Stderr: stderr,
		DryRun: flags.DryRun,
		Logger: logger,
	}
	return helena.Build(ctx, r, cwd, cfg, extra)
}

func exitCode(err error) int {
	var flagErr *yargs.InvalidFlagError
	var argsErr *yargs.InvalidArgsError
	switch {
	case errors.Is(err, syscall.ENAMETOOLONG):
		return int(syscall.ENAMETOOLONG)
	case errors.Is(err, errUsage), errors.As(err, &flagErr), errors.As(err, &argsErr):
		return exitUsage
	}
	return exitError
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("error:"), err)
}
