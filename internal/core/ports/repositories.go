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

package ports

import (
	"context"

	"github.com/Adembc/fleetssh/internal/core/domain"
)

// InventoryRepository serves the servers and groups loaded at startup.
type InventoryRepository interface {
	GetServer(name string) (domain.ServerRecord, bool)
	ListServers() []domain.ServerRecord
	GetGroup(name string) (domain.GroupRecord, bool)
	ListGroups() []domain.GroupRecord
}

// CredentialRepository serves the default credential set and per-server overrides.
type CredentialRepository interface {
	Default() domain.CredentialSet
	Override(serverName string) (domain.CredentialSet, bool)
}

// Transport runs one command on a remote server.
// A nonzero exit status is reported through Result, not as an error.
type Transport interface {
	Run(ctx context.Context, inv domain.Invocation) (domain.Result, error)
}

// SettingsRepository loads the application settings.
type SettingsRepository interface {
	Load() (domain.Settings, error)
}
