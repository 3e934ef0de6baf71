// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner runs external commands with the process's standard streams, or
// only prints them when DryRun is set.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	DryRun bool
	Logger *log.Logger
}

func (r *Runner) Run(ctx context.Context, name string, arg ...string) error {
	line := CommandLine(name, arg...)
	if r.DryRun {
		_, err := fmt.Fprintln(r.stdout(), line)
		return err
	}
	r.logger().Debug("running", "cmd", line)
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// CommandLine renders a command the way a shell user would type it.
func CommandLine(name string, arg ...string) string {
	parts := make([]string, 0, len(arg)+1)
	for _, s := range append([]string{name}, arg...) {
		if s == "" || strings.ContainsAny(s, " \t\n\"'\\$") {
			s = strconv.Quote(s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}
