// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "strconv"

// Phase is a phase of the application lifecycle.
type Phase int32

const (
	// Uninitialized is before the window, renderer and client all exist.
	Uninitialized Phase = iota

	// Active is while the window, renderer and client all exist.
	Active

	// ShuttingDown is while they are being released.
	ShuttingDown

	// Terminated is after they have been released.
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "Uninitialized"
	case Active:
		return "Active"
	case ShuttingDown:
		return "ShuttingDown"
	case Terminated:
		return "Terminated"
	}
	return "Phase(" + strconv.Itoa(int(p)) + ")"
}
