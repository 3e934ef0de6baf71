// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparser

import "strings"

// FindSubcommand returns the first argument after argv[0] that is neither an
// option nor the argument right after an option. Leading spaces are trimmed
// from every argument and arguments that end up empty are skipped. The
// returned token is trimmed.
func FindSubcommand(argv []string) (string, bool) {
	if len(argv) <= 1 {
		return "", false
	}
	lastOption := -1
	for i := 1; i < len(argv); i++ {
		arg := strings.TrimLeft(argv[i], " ")
		if arg == "" {
			continue
		}
		if arg[0] == '-' {
			lastOption = i
			continue
		}
		if lastOption >= 0 && i == lastOption+1 {
			// Possibly the option's value.
			lastOption = -1
			continue
		}
		return arg, true
	}
	return "", false
}
