// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/components"
	"github.com/jeranaias/lanchat-tui/internal/util"
)

const (
	// transferInterval paces the simulated transfer.
	transferInterval = 80 * time.Millisecond

	// transferSteps is how many ticks a simulated transfer takes.
	transferSteps = 40
)

// Transfer is a simulated outbound file transfer.
type Transfer struct {
	ID    int
	Name  string
	Size  int64
	Sent  int64
	chunk int64

	// reported is the last quarter (0-4) written to the log.
	reported int
}

// NewTransfer starts a transfer of name. The size is made up from the name
// so the same file always takes the same number of ticks.
func NewTransfer(id int, name string) *Transfer {
	size := int64(32*1024) * int64(util.RuneLen(name)%16+1)
	chunk := size / transferSteps
	if chunk < 1 {
		chunk = 1
	}
	return &Transfer{ID: id, Name: name, Size: size, chunk: chunk}
}

// Progress returns the transfer state shown by the overlay.
func (t *Transfer) Progress() model.TransferProgress {
	return model.TransferProgress{Completed: t.Sent, Total: t.Size}
}

// Advance sends one more chunk and reports whether the transfer is done.
func (t *Transfer) Advance() bool {
	t.Sent += t.chunk
	if t.Sent > t.Size {
		t.Sent = t.Size
	}
	return t.Progress().Done()
}

// NextQuarter reports a newly reached quarter of the transfer (1-4), or 0
// when nothing new is due.
func (t *Transfer) NextQuarter() int {
	q := int(t.Progress().Percent()) / 25
	if q <= t.reported {
		return 0
	}
	t.reported = q
	return q
}

// Summary describes a finished transfer.
func (t *Transfer) Summary() string {
	return fmt.Sprintf("%s sent (%d KiB)", t.Name, t.Size/1024)
}

// ParseSend reports whether content is a send command and returns the file
// name it names, which may be empty.
func ParseSend(content string) (string, bool) {
	token, ok := components.CommandToken(content)
	if !ok || token != components.SendCommand {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(content, token)), true
}
