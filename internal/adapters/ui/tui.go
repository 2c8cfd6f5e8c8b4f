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
	"context"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/ports"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const AppName = "fleetssh"

// CommandLineFunc renders the shell command that reaches a resolved server.
type CommandLineFunc func(domain.ResolvedConnection) string

type tui struct {
	app        *tview.Application
	root       *tview.Flex
	serverList *ServerList
	details    *ServerDetails
	statusBar  *tview.TextView

	inventory   ports.InventoryRepository
	resolver    ports.Resolver
	dispatcher  ports.Dispatcher
	commandLine CommandLineFunc
	ctx         context.Context
	logger      *zap.SugaredLogger
}

// NewTUI creates the interactive server browser.
func NewTUI(logger *zap.SugaredLogger, inv ports.InventoryRepository, r ports.Resolver, d ports.Dispatcher, commandLine CommandLineFunc) *tui {
	return &tui{
		app:         tview.NewApplication(),
		inventory:   inv,
		resolver:    r,
		dispatcher:  d,
		commandLine: commandLine,
		logger:      logger,
	}
}

func DefaultStatusText() string {
	return "[white]↑/↓[-] navigate  [white]Enter[-] test  [white]c[-] copy ssh command  [white]?[-] help  [white]q[-] quit"
}

// Run builds the layout and blocks until the user quits.
func (t *tui) Run(ctx context.Context) error {
	t.ctx = ctx
	t.buildComponents().buildLayout().bindEvents()
	t.refreshServerList()

	t.logger.Infow("tui start", "servers", len(t.inventory.ListServers()))
	if err := t.app.SetRoot(t.root, true).EnableMouse(true).Run(); err != nil {
		t.logger.Errorw("tui run error", "error", err)
		return err
	}
	t.logger.Infow("tui end")
	return nil
}

func (t *tui) buildComponents() *tui {
	t.details = NewServerDetails()
	t.serverList = NewServerList().OnSelectionChange(t.handleServerSelectionChange)
	t.statusBar = tview.NewTextView().SetDynamicColors(true).SetText(DefaultStatusText())
	return t
}

func (t *tui) buildLayout() *tui {
	content := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(t.serverList, 0, 3, true).
		AddItem(t.details, 0, 2, false)

	t.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(t.statusBar, 1, 0, false)
	return t
}

func (t *tui) bindEvents() *tui {
	t.app.SetInputCapture(t.handleGlobalKeys)
	return t
}
