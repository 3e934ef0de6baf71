// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDescription is returned when a Description breaks one of the
// option or naming rules.
var ErrInvalidDescription = errors.New("invalid description")

// Option is a flag accepted by a program. It is given either as
// --LongName or as -ShortName.
type Option struct {
	// LongName has at least two characters and no leading dashes.
	LongName string
	// ShortName is a single printable ASCII character other than '-'.
	ShortName     byte
	Documentation string
}

// Subcommand is an operation a program exposes by name, such as "build".
type Subcommand struct {
	Name          string `yaml:"name"`
	Documentation string `yaml:"documentation"`
}

// Description holds what a program tells the registry about itself.
type Description struct {
	Name        string       `yaml:"name"`
	Overview    string       `yaml:"overview"`
	Options     []Option     `yaml:"options"`
	Subcommands []Subcommand `yaml:"subcommands"`
}

// UnmarshalYAML decodes an option written as
//
//	long: verbose
//	short: v
//	documentation: Print debug logs.
func (o *Option) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Long          string `yaml:"long"`
		Short         string `yaml:"short"`
		Documentation string `yaml:"documentation"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if len(raw.Short) != 1 {
		return fmt.Errorf("line %d: short option %q must be a single character", value.Line, raw.Short)
	}
	*o = Option{
		LongName:      raw.Long,
		ShortName:     raw.Short[0],
		Documentation: raw.Documentation,
	}
	return nil
}

// DecodeDescription reads a YAML document describing a program and checks
// it the same way Describe does.
func DecodeDescription(r io.Reader) (Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Description
	if err := dec.Decode(&d); err != nil {
		return Description{}, fmt.Errorf("failed to decode description: %w", err)
	}
	if err := d.validate(); err != nil {
		return Description{}, err
	}
	return d, nil
}

// ShortOptions returns the short option specification for opts: one
// character per option, in declaration order. Repeated characters are kept
// only once.
func ShortOptions(opts []Option) string {
	var b strings.Builder
	seen := make(map[byte]bool, len(opts))
	for _, o := range opts {
		if o.ShortName == 0 || seen[o.ShortName] {
			continue
		}
		seen[o.ShortName] = true
		b.WriteByte(o.ShortName)
	}
	return b.String()
}

func (o Option) validate() error {
	if len(o.LongName) < 2 {
		return fmt.Errorf("long option %q must have at least 2 characters", o.LongName)
	}
	if strings.HasPrefix(o.LongName, "-") {
		return fmt.Errorf("long option %q must not start with a dash", o.LongName)
	}
	if strings.ContainsAny(o.LongName, " =") {
		return fmt.Errorf("long option %q must not contain spaces or '='", o.LongName)
	}
	if o.ShortName <= ' ' || o.ShortName > '~' || o.ShortName == '-' {
		return fmt.Errorf("option --%s has invalid short name %q", o.LongName, o.ShortName)
	}
	return nil
}

func (d Description) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: program name is empty", ErrInvalidDescription)
	}
	longs := make(map[string]bool, len(d.Options))
	shorts := make(map[byte]string, len(d.Options))
	for _, o := range d.Options {
		if err := o.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDescription, d.Name, err)
		}
		if longs[o.LongName] {
			return fmt.Errorf("%w: %s: duplicate option --%s", ErrInvalidDescription, d.Name, o.LongName)
		}
		longs[o.LongName] = true
		if prev, ok := shorts[o.ShortName]; ok {
			return fmt.Errorf("%w: %s: -%c is used by both --%s and --%s", ErrInvalidDescription, d.Name, o.ShortName, prev, o.LongName)
		}
		shorts[o.ShortName] = o.LongName
	}
	for _, s := range d.Subcommands {
		if s.Name == "" || strings.HasPrefix(s.Name, "-") {
			return fmt.Errorf("%w: %s: invalid subcommand name %q", ErrInvalidDescription, d.Name, s.Name)
		}
	}
	return nil
}

func (d Description) clone() Description {
	d.Options = slices.Clone(d.Options)
	d.Subcommands = slices.Clone(d.Subcommands)
	return d
}
