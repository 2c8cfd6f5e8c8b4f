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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type ServerDetails struct {
	*tview.TextView
}

func NewServerDetails() *ServerDetails {
	details := &ServerDetails{
		TextView: tview.NewTextView(),
	}
	details.build()
	return details
}

func (sd *ServerDetails) build() {
	sd.TextView.SetDynamicColors(true).
		SetWrap(true).
		SetBorder(true).
		SetTitle("Details").
		SetBorderColor(tcell.Color238).
		SetTitleColor(tcell.Color250)
}

// UpdateServer shows the inventory record and, when resolution succeeded,
// the effective connection. resolveErr is shown in place of the connection otherwise.
func (sd *ServerDetails) UpdateServer(server domain.ServerRecord, conn domain.ResolvedConnection, resolveErr error) {
	var text strings.Builder
	text.WriteString(fmt.Sprintf("[::b]%s[-]\n\n", server.Name))
	text.WriteString(fmt.Sprintf("Description: [white]%s[-]\n", orNA(server.Description)))
	text.WriteString(fmt.Sprintf("Group: %s\n", orNA(renderGroupBadge(server.Group))))
	text.WriteString(fmt.Sprintf("IP Public: [white]%s[-]\nIP Wireguard: [white]%s[-]\n\n",
		orNA(server.IPPublic), orNA(server.IPWireguard)))

	text.WriteString("[::b]Connection:[-]\n")
	if resolveErr != nil {
		text.WriteString(fmt.Sprintf("[red]%v[-]\n\n", resolveErr))
	} else {
		text.WriteString(fmt.Sprintf("Host: [white]%s[-]\nUser: [white]%s[-]\nPort: [white]%d[-]\n",
			conn.Host, conn.User, conn.Port))
		text.WriteString(fmt.Sprintf("Key:  [white]%s[-]\n\n", orNA(conn.SSHKeyPath)))
	}

	text.WriteString("[::b]Commands:[-]\n")
	text.WriteString("  Enter: Test connection\n  c: Copy SSH command\n  ?: Help\n  q: Quit")

	sd.TextView.SetText(text.String())
}

func (sd *ServerDetails) ShowEmpty() {
	sd.TextView.SetText("No servers in the inventory.")
}
