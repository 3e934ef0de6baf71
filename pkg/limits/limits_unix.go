// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package limits

import "golang.org/x/sys/unix"

// PathMax is the size of the longest path the kernel accepts, terminating
// NUL included.
const PathMax = unix.PathMax
