// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"errors"
	"fmt"
)

// ErrSurfaceClosed is returned by surfaces used after Close.
var ErrSurfaceClosed = errors.New("surface closed")

// RenderError reports a surface failure during Draw.
type RenderError struct {
	// Op is "size" or "commit".
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
