// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package helena

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/helena-lang/helena/pkg/cli"
)

const (
	ConfigName      = "helena.toml"
	DefaultCMake    = "cmake"
	DefaultBuildDir = "build"
)

// Config is the content of a helena.toml file.
type Config struct {
	CMake     string `toml:"cmake,omitempty"`
	BuildDir  string `toml:"build_dir,omitempty"`
	Generator string `toml:"generator,omitempty"`
	Jobs      int    `toml:"jobs,omitempty"`
}

// DefaultConfig is used when no helena.toml is found.
func DefaultConfig() Config {
	return Config{CMake: DefaultCMake, BuildDir: DefaultBuildDir}
}

// FindConfig looks for helena.toml in startDir and its parents. It returns
// os.ErrNotExist when there is none.
func FindConfig(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, ConfigName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadConfig reads path on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("failed to parse %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Jobs < 0 {
		return Config{}, fmt.Errorf("failed to parse %s: jobs must not be negative", path)
	}
	return cfg, nil
}

// ResolveConfig loads explicit when set, otherwise the nearest helena.toml
// above dir, otherwise the defaults. The returned path is empty when the
// defaults are used.
func ResolveConfig(dir, explicit string) (Config, string, error) {
	path := explicit
	if path == "" {
		found, err := FindConfig(dir)
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), "", nil
		}
		if err != nil {
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// WithFlags returns cfg with the values set on the command line applied.
func (cfg Config) WithFlags(flags cli.BuildFlags) Config {
	if flags.CMake != "" {
		cfg.CMake = flags.CMake
	}
	if flags.BuildDir != "" {
		cfg.BuildDir = flags.BuildDir
	}
	if flags.Generator != "" {
		cfg.Generator = flags.Generator
	}
	if flags.Jobs > 0 {
		cfg.Jobs = flags.Jobs
	}
	return cfg
}
