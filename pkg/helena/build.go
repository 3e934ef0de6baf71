// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package helena

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/helena-lang/helena/pkg/cmdutil"
	"github.com/helena-lang/helena/pkg/hx"
	"github.com/helena-lang/helena/pkg/limits"
)

// Runner runs one external command.
type Runner interface {
	Run(ctx context.Context, name string, arg ...string) error
}

var _ Runner = (*cmdutil.Runner)(nil)

// BuildDirectory joins dir onto sourceDir unless dir is absolute. The result
// must fit into a platform path, otherwise an *hx.OverflowError is returned.
func BuildDirectory(sourceDir, dir string) (string, error) {
	buf := hx.NewBuffer(limits.PathMax - 1)
	if filepath.IsAbs(dir) {
		if _, err := buf.Concat(filepath.Clean(dir), hx.Fill); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	if _, err := buf.Concat(strings.TrimRight(sourceDir, string(filepath.Separator)), hx.Sequential); err != nil {
		return "", err
	}
	if _, err := buf.Concat(string(filepath.Separator)+filepath.Clean(dir), hx.Fill); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Build configures sourceDir with cmake into the configured build directory
// and builds it. extra is passed to the build step.
func Build(ctx context.Context, r Runner, sourceDir string, cfg Config, extra []string) error {
	if cfg.BuildDir == "" {
		cfg.BuildDir = DefaultBuildDir
	}
	if cfg.CMake == "" {
		cfg.CMake = DefaultCMake
	}
	dir, err := BuildDirectory(sourceDir, cfg.BuildDir)
	if err != nil {
		return err
	}

	configure := []string{"-S", sourceDir, "-B", dir}
	if cfg.Generator != "" {
		configure = append(configure, "-G", cfg.Generator)
	}
	if err := r.Run(ctx, cfg.CMake, configure...); err != nil {
		return err
	}

	build := []string{"--build", dir}
	if cfg.Jobs > 0 {
		build = append(build, "--parallel", strconv.Itoa(cfg.Jobs))
	}
	build = append(build, extra...)
	return r.Run(ctx, cfg.CMake, build...)
}
