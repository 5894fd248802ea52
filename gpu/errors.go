// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"cogentcore.org/sceneview/base/errors"
)

var (
	// ErrTargetBound is returned when binding or blitting while a
	// render target is already bound. The context has exactly one
	// framebuffer binding, so passes may not interleave.
	ErrTargetBound = errors.New("gpu: a render target is already bound")

	// ErrIncomplete is returned when binding a render target whose last
	// resize did not pass the completeness check.
	ErrIncomplete = errors.New("gpu: render target is not complete")

	// ErrReleased is returned for operations on a released render target.
	ErrReleased = errors.New("gpu: render target has been released")
)

// ResourceCreationError is returned when the GPU fails to allocate an object.
type ResourceCreationError struct {
	// Kind is the kind of object: framebuffer, renderbuffer or texture.
	Kind string
}

func (e *ResourceCreationError) Error() string {
	return "gpu: failed to create " + e.Kind
}

// FramebufferIncompleteError is returned when a render target fails the
// completeness check after a resize. Rendering into it must be skipped.
type FramebufferIncompleteError struct {
	// Status is the raw status code from CheckFramebufferStatus.
	Status uint32

	// Size is the size the attachments were reallocated at.
	Size image.Point
}

func (e *FramebufferIncompleteError) Error() string {
	return fmt.Sprintf("gpu: framebuffer incomplete at %dx%d: %s (%#x)", e.Size.X, e.Size.Y, StatusString(e.Status), e.Status)
}

// GLError is a non-zero value returned from GetError after an operation.
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("gpu: %s: GL error %#x", e.Op, e.Code)
}
