// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package limits

// PathMax matches MAX_PATH on Windows, terminating NUL included.
const PathMax = 260
