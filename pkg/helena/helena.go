// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package helena implements the helena driver: its program description, its
// project configuration and the build subcommand.
package helena

import (
	"bytes"
	_ "embed"

	"github.com/helena-lang/helena/pkg/argparser"
	"github.com/helena-lang/helena/pkg/cli"
)

//go:embed description.yaml
var descriptionYAML []byte

// ProgramDescription returns the description of the helena driver. Its
// options are the global flags.
func ProgramDescription() (argparser.Description, error) {
	d, err := argparser.DecodeDescription(bytes.NewReader(descriptionYAML))
	if err != nil {
		return argparser.Description{}, err
	}
	d.Options = cli.GlobalOptions()
	return d, nil
}

// Describe registers the helena driver with reg.
func Describe(reg *argparser.Registry) error {
	d, err := ProgramDescription()
	if err != nil {
		return err
	}
	return reg.Describe(d)
}
