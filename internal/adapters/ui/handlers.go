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
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// =============================================================================
// Event Handlers (handle user input/events)
// =============================================================================

func (t *tui) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	if t.app.GetFocus() != t.serverList {
		return event
	}

	switch event.Rune() {
	case 'q':
		t.handleQuit()
		return nil
	case 'c':
		t.handleCopyCommand()
		return nil
	case '?':
		t.handleHelpShow()
		return nil
	}

	if event.Key() == tcell.KeyEnter {
		t.handleServerTest()
		return nil
	}

	return event
}

func (t *tui) handleQuit() {
	t.app.Stop()
}

func (t *tui) handleCopyCommand() {
	server, ok := t.serverList.GetSelectedServer()
	if !ok {
		return
	}
	conn, err := t.resolver.Resolve(server.Name)
	if err != nil {
		t.showStatusTemp(fmt.Sprintf("Cannot resolve %s: %v", server.Name, err))
		return
	}
	cmd := t.commandLine(conn)
	if err := clipboard.WriteAll(cmd); err != nil {
		t.logger.Warnw("clipboard write failed", "error", err)
		t.showStatusTemp("Failed to copy to clipboard")
		return
	}
	t.showStatusTemp("Copied: " + cmd)
}

func (t *tui) handleServerTest() {
	if server, ok := t.serverList.GetSelectedServer(); ok {
		t.showTestModal(server)
	}
}

func (t *tui) handleServerSelectionChange(server domain.ServerRecord) {
	conn, err := t.resolver.Resolve(server.Name)
	t.details.UpdateServer(server, conn, err)
}

func (t *tui) handleHelpShow() {
	t.showHelpModal()
}

func (t *tui) handleModalClose() {
	t.returnToMain()
}

// =============================================================================
// UI Display Functions (show UI elements/modals)
// =============================================================================

func (t *tui) showTestModal(server domain.ServerRecord) {
	msg := fmt.Sprintf("Test connection to %s?\n\nThe ssh client runs in the foreground.", server.Name)

	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"Confirm", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex == 0 {
				var ok bool
				// Suspend the TUI while the external ssh command runs.
				t.app.Suspend(func() {
					ok = t.dispatcher.Test(t.ctx, server.Name)
					fmt.Print("\nPress Enter to return...")
					_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
				})
				if ok {
					t.showStatusTemp(server.Name + ": connection successful")
				} else {
					t.showStatusTemp(server.Name + ": connection failed")
				}
			}
			t.handleModalClose()
		})

	t.app.SetRoot(modal, true)
}

func (t *tui) showHelpModal() {
	text := "Keyboard shortcuts:\n\n" +
		"  ↑/↓            Navigate\n" +
		"  Enter          Test connection\n" +
		"  c              Copy SSH command\n" +
		"  q              Quit\n" +
		"  ?              Help\n"

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			t.handleModalClose()
		})

	t.app.SetRoot(modal, true)
}

// =============================================================================
// Internal Operations (perform actual work)
// =============================================================================

func (t *tui) refreshServerList() {
	servers := t.inventory.ListServers()
	t.serverList.UpdateServers(servers)
	if len(servers) == 0 {
		t.details.ShowEmpty()
	}
}

func (t *tui) returnToMain() {
	t.app.SetRoot(t.root, true)
	t.app.SetFocus(t.serverList)
}

// showStatusTemp displays a temporary message in the status bar and then restores the default text.
func (t *tui) showStatusTemp(msg string) {
	if t.statusBar == nil {
		return
	}
	t.statusBar.SetText("[#A0FFA0]" + tview.Escape(msg) + "[-]")
	time.AfterFunc(3*time.Second, func() {
		if t.app != nil {
			t.app.QueueUpdateDraw(func() {
				if t.statusBar != nil {
					t.statusBar.SetText(DefaultStatusText())
				}
			})
		}
	})
}
