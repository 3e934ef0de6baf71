// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import (
	"io"
	"os"
	"sync"

	"github.com/helena-lang/helena/pkg/ownedarray"
	"github.com/helena-lang/helena/pkg/tui"
)

// Registry records the descriptions of programs. The zero value is ready to
// use. Descriptions are never removed or modified once registered.
type Registry struct {
	// Stdout receives the output of default execution. Nil means os.Stdout.
	Stdout io.Writer
	// Colors styles the headings of default execution output.
	Colors tui.Colorizer

	mu           sync.RWMutex
	descriptions *ownedarray.Array[Description] // created by the first Describe
	byName       map[string]int                 // name -> index of first registration
}

// NewRegistry returns an empty registry writing to os.Stdout.
func NewRegistry() *Registry {
	return &Registry{}
}

// Describe records d. It should be called once per program, before
// ExecuteDefault. Registering the same name again adds another entry, but
// lookups keep resolving to the first one.
func (r *Registry) Describe(d Description) error {
	if err := d.validate(); err != nil {
		return err
	}
	d = d.clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptions == nil {
		r.descriptions = ownedarray.New[Description]()
		r.byName = make(map[string]int)
	}
	if _, ok := r.byName[d.Name]; !ok {
		r.byName[d.Name] = r.descriptions.Len()
	}
	r.descriptions.Append(d)
	return nil
}

// Lookup returns the description registered under name.
func (r *Registry) Lookup(name string) (Description, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byName[name]
	if !ok {
		return Description{}, false
	}
	var d Description
	r.descriptions.CopyOut(&d, i)
	return d.clone(), true
}

// Len reports how many descriptions were registered, duplicates included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptions.Len()
}

func (r *Registry) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}
