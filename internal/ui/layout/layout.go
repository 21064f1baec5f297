// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout splits the terminal into the rectangles the panels draw in.
package layout

// Rect is a screen region in cells. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Point is a cell position on screen.
type Point struct {
	X, Y int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns the rectangle inside a one-cell border. Degenerate sizes
// clamp to zero.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// =============================================================================
// CONSTRAINTS
// =============================================================================

type constraintKind int

const (
	kindLength constraintKind = iota
	kindMin
)

// Constraint sizes one slot of a split.
type Constraint struct {
	kind constraintKind
	n    int
}

// Length is a fixed size slot. It shrinks only when the area is too small.
func Length(n int) Constraint {
	return Constraint{kind: kindLength, n: clampZero(n)}
}

// Min is a flexible slot that takes the space the fixed slots leave, and at
// least n cells when there is room for it.
func Min(n int) Constraint {
	return Constraint{kind: kindMin, n: clampZero(n)}
}

// Split stacks one rectangle per constraint from top to bottom,
// covering area exactly. Fixed slots are served first, in order; flexible
// slots share the remainder, the first one taking any odd cell.
func Split(area Rect, constraints ...Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}

	height := clampZero(area.Height)
	sizes := make([]int, len(constraints))
	remaining := height

	var flexible []int
	for i, c := range constraints {
		switch c.kind {
		case kindLength:
			size := c.n
			if size > remaining {
				size = remaining
			}
			sizes[i] = size
			remaining -= size
		case kindMin:
			flexible = append(flexible, i)
		}
	}

	// Honor Min floors by taking space back from fixed slots, bottom-most
	// last, only when the floors cannot be met otherwise.
	if len(flexible) > 0 {
		share := remaining / len(flexible)
		extra := remaining % len(flexible)
		for j, i := range flexible {
			sizes[i] = share
			if j < extra {
				sizes[i]++
			}
		}
		for _, i := range flexible {
			if need := constraints[i].n - sizes[i]; need > 0 {
				sizes[i] += takeFromFixed(sizes, constraints, need)
			}
		}
	}

	rects := make([]Rect, len(constraints))
	y := area.Y
	for i, size := range sizes {
		rects[i] = Rect{X: area.X, Y: y, Width: clampZero(area.Width), Height: size}
		y += size
	}
	return rects
}

func takeFromFixed(sizes []int, constraints []Constraint, need int) int {
	taken := 0
	for i := range constraints {
		if constraints[i].kind != kindLength || taken == need {
			continue
		}
		give := sizes[i]
		if give > need-taken {
			give = need - taken
		}
		sizes[i] -= give
		taken += give
	}
	return taken
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
