// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ownedarray provides a growable, append-only array that owns the
// elements appended to it.
//
// Appending hands the element over to the array; the array keeps its own
// copy and callers read elements back through CopyOut or At. Reads outside
// the populated range are silently ignored rather than reported.
//
// An Array is not safe for concurrent use.
package ownedarray

const minCapacity = 4

// Array is an append-only sequence of T with an explicit growth policy:
// capacity starts at zero, becomes 4 on the first append and doubles every
// time an append would exceed it.
type Array[T any] struct {
	head  []T
	count int
}

// New returns an empty array.
func New[T any]() *Array[T] {
	a := new(Array[T])
	a.Init()
	return a
}

// Init resets a to an empty array with no backing storage. It is a no-op on
// a nil receiver.
func (a *Array[T]) Init() {
	if a == nil {
		return
	}
	a.head = nil
	a.count = 0
}

// Len reports the number of elements in a.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.count
}

// Cap reports the number of elements a can hold before growing.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.head)
}

// Append moves elem to the end of a, growing the backing storage first if
// needed.
func (a *Array[T]) Append(elem T) {
	a.growOnOverflow(a.count + 1)
	a.head[a.count] = elem
	a.count++
}

// CopyOut copies the element at index i into dst. When i is outside
// [0, Len()) or dst is nil, dst is left unchanged.
func (a *Array[T]) CopyOut(dst *T, i int) {
	if dst == nil || !a.inRange(i) {
		return
	}
	*dst = a.head[i]
}

// At returns the element at index i and whether i was in range.
func (a *Array[T]) At(i int) (T, bool) {
	var elem T
	if !a.inRange(i) {
		return elem, false
	}
	a.CopyOut(&elem, i)
	return elem, true
}

func (a *Array[T]) inRange(i int) bool {
	return a != nil && i >= 0 && i < a.count
}

func (a *Array[T]) growOnOverflow(newCount int) {
	capacity := len(a.head)
	if newCount <= capacity {
		return
	}
	for capacity < newCount {
		if capacity == 0 {
			capacity = minCapacity
		} else {
			capacity *= 2
		}
	}
	head := make([]T, capacity)
	copy(head, a.head[:a.count])
	a.head = head
}
