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
	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type ServerList struct {
	*tview.List
	servers           []domain.ServerRecord
	onSelectionChange func(domain.ServerRecord)
}

func NewServerList() *ServerList {
	list := &ServerList{
		List: tview.NewList(),
	}
	list.build()
	return list
}

func (sl *ServerList) build() {
	sl.List.ShowSecondaryText(true).
		SetHighlightFullLine(true).
		SetSelectedBackgroundColor(tcell.Color24).
		SetSecondaryTextColor(tcell.Color245)
	sl.List.SetBorder(true).
		SetTitle("Servers").
		SetBorderColor(tcell.Color238).
		SetTitleColor(tcell.Color250)
	sl.List.SetChangedFunc(func(index int, _, _ string, _ rune) {
		if index >= 0 && index < len(sl.servers) && sl.onSelectionChange != nil {
			sl.onSelectionChange(sl.servers[index])
		}
	})
}

func (sl *ServerList) UpdateServers(servers []domain.ServerRecord) {
	sl.servers = servers
	sl.List.Clear()
	for _, s := range servers {
		primary, secondary := formatServerLine(s)
		sl.List.AddItem(primary, secondary, 0, nil)
	}
	if len(servers) > 0 {
		sl.List.SetCurrentItem(0)
		if sl.onSelectionChange != nil {
			sl.onSelectionChange(servers[0])
		}
	}
}

func (sl *ServerList) GetSelectedServer() (domain.ServerRecord, bool) {
	idx := sl.List.GetCurrentItem()
	if idx >= 0 && idx < len(sl.servers) {
		return sl.servers[idx], true
	}
	return domain.ServerRecord{}, false
}

func (sl *ServerList) OnSelectionChange(fn func(domain.ServerRecord)) *ServerList {
	sl.onSelectionChange = fn
	return sl
}
