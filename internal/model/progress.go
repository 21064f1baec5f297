// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "errors"

// ErrInvalidProgress is returned for a transfer state that breaks the
// TransferProgress invariant.
var ErrInvalidProgress = errors.New("invalid transfer progress")

// TransferProgress describes an active outbound file transfer.
// Invariant: 0 <= Completed <= Total and Total > 0.
type TransferProgress struct {
	Completed int64
	Total     int64
}

// Valid reports whether the invariant holds.
func (p TransferProgress) Valid() bool {
	return p.Total > 0 && p.Completed >= 0 && p.Completed <= p.Total
}

// Done reports whether every byte has been sent.
func (p TransferProgress) Done() bool {
	return p.Total > 0 && p.Completed >= p.Total
}

// Percent returns the completed share in the range 0-100.
func (p TransferProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	completed := p.Completed
	if completed < 0 {
		completed = 0
	}
	if completed > p.Total {
		completed = p.Total
	}
	return float64(completed) / float64(p.Total) * 100
}
