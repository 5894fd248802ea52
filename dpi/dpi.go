// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dpi converts sizes between logical (device-independent) units,
// as used for window and UI layout, and physical framebuffer pixels,
// given a device pixel ratio.
//
// Physical sizes are never zero in either dimension, since zero-sized
// GPU attachments are invalid.
package dpi

import (
	"image"
	"math"

	"cogentcore.org/sceneview/math32"
)

// MaxPixels is the largest physical dimension returned, so that
// physical sizes always fit the 32-bit sizes taken by the GPU.
const MaxPixels = math.MaxInt32

// ToPhysical returns the physical pixel size corresponding to the given
// logical size at the given device pixel ratio. Each dimension is
// max(1, round(logical * ratio)), limited to [MaxPixels]; non-finite
// values yield 1.
func ToPhysical(logical math32.Vector2, ratio float32) image.Point {
	return image.Point{toPixels(logical.X * ratio), toPixels(logical.Y * ratio)}
}

// ToLogical returns the logical size corresponding to the given physical
// pixel size. A non-positive or non-finite ratio is treated as 1.
func ToLogical(physical image.Point, ratio float32) math32.Vector2 {
	return math32.Vector2FromPoint(physical).DivScalar(Ratio(ratio))
}

// Ratio returns ratio if it is a usable device pixel ratio, and 1 otherwise.
func Ratio(ratio float32) float32 {
	if ratio <= 0 || !math32.IsFinite(ratio) {
		return 1
	}
	return ratio
}

// Clamp returns size with each dimension clamped to [1, MaxPixels].
func Clamp(size image.Point) image.Point {
	return image.Point{math32.Clamp(size.X, 1, MaxPixels), math32.Clamp(size.Y, 1, MaxPixels)}
}

// Resize returns the physical size needed to display the given logical
// region at the given ratio, and whether it differs from current.
// The equal case is the common one and involves no further work.
func Resize(current image.Point, logical math32.Vector2, ratio float32) (image.Point, bool) {
	want := ToPhysical(logical, ratio)
	return want, want != current
}

// RectToPhysical returns the physical pixel rectangle covering the given
// logical rectangle, with each edge rounded to the nearest pixel.
// Unlike sizes, the result may be empty.
func RectToPhysical(r math32.Box2, ratio float32) image.Rectangle {
	ratio = Ratio(ratio)
	edge := func(v float32) int {
		v = math32.Round(v * ratio)
		switch {
		case !math32.IsFinite(v):
			return 0
		case v >= MaxPixels:
			return MaxPixels
		case v <= -MaxPixels:
			return -MaxPixels
		}
		return int(v)
	}
	return image.Rect(edge(r.Min.X), edge(r.Min.Y), edge(r.Max.X), edge(r.Max.Y))
}

func toPixels(v float32) int {
	switch {
	case !math32.IsFinite(v):
		return 1
	case v >= MaxPixels:
		return MaxPixels
	}
	return int(math32.Max(1, math32.Round(v)))
}
