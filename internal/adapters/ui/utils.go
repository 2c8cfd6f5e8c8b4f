// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ui

import (
	"fmt"
	"strings"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/mattn/go-runewidth"
)

const notAvailable = "N/A"

// cellPad pads a string with spaces so its display width is at least `width` cells.
// This keeps wide runes in server names from breaking column alignment.
func cellPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// renderGroupBadge renders the server's group as a colored chip for tview.
func renderGroupBadge(group string) string {
	if group == "" {
		return ""
	}
	return fmt.Sprintf("[black:#5FAFFF] %s [-:-:-]", group)
}

func formatServerLine(s domain.ServerRecord) (primary, secondary string) {
	addr := s.IPPublic
	if addr == "" {
		addr = s.IPWireguard
	}
	primary = fmt.Sprintf("%s %s  %s", cellPad(s.Name, 20), cellPad(orNA(addr), 16), renderGroupBadge(s.Group))
	secondary = s.Description
	return
}
