// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hx concatenates text into fixed-size buffers under an explicit
// overflow policy, so that truncation only ever happens when asked for.
package hx

import (
	"fmt"
	"syscall"
)

// Strategy decides what Concat does when the source does not fit.
type Strategy int

const (
	// Fill refuses to overflow. It is meant for the last write into a
	// buffer.
	Fill Strategy = iota
	// Truncate appends the part of the source that fits.
	Truncate
	// Sequential refuses to overflow and expects more writes to follow.
	Sequential
)

func (s Strategy) String() string {
	switch s {
	case Fill:
		return "fill"
	case Truncate:
		return "truncate"
	case Sequential:
		return "sequential"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// OverflowError reports a concatenation that did not fit its buffer. It
// unwraps to syscall.ENAMETOOLONG.
type OverflowError struct {
	Source string
	Dest   string
	Size   int // capacity of the buffer in bytes
	Over   int // bytes that did not fit
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%q does not fit into the %d byte(s) allocated for %q (off by %d byte(s))", e.Source, e.Size, e.Dest, e.Over)
}

func (e *OverflowError) Unwrap() error {
	return syscall.ENAMETOOLONG
}

// Buffer holds at most Size bytes of text.
type Buffer struct {
	b    []byte
	size int
}

// NewBuffer returns an empty buffer that holds at most size bytes.
func NewBuffer(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{b: make([]byte, 0, size), size: size}
}

// Concat appends src to b and returns the number of bytes appended. With
// Fill or Sequential, a src that does not fit leaves b unchanged and yields
// an *OverflowError.
func (b *Buffer) Concat(src string, s Strategy) (int, error) {
	if src == "" {
		return 0, nil
	}
	free := b.size - len(b.b)
	if len(src) > free {
		if s != Truncate {
			return 0, &OverflowError{
				Source: src,
				Dest:   string(b.b),
				Size:   b.size,
				Over:   len(src) - free,
			}
		}
		src = src[:free]
	}
	b.b = append(b.b, src...)
	return len(src), nil
}

func (b *Buffer) String() string { return string(b.b) }

// Len reports the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.b) }

// Size reports the capacity of b in bytes.
func (b *Buffer) Size() int { return b.size }
