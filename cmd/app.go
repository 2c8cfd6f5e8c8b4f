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

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/Adembc/fleetssh/internal/adapters/config"
	"github.com/Adembc/fleetssh/internal/adapters/data/file"
	"github.com/Adembc/fleetssh/internal/adapters/flags"
	"github.com/Adembc/fleetssh/internal/adapters/transport/ssh"
	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/ports"
	"github.com/Adembc/fleetssh/internal/core/services"
	"github.com/Adembc/fleetssh/internal/logger"
	"go.uber.org/zap"
)

const logFileName = "fleetssh.log"

// application holds everything loaded once at startup and shared by the commands.
type application struct {
	logger      *zap.SugaredLogger
	settings    domain.Settings
	inventory   *file.InventoryRepo
	credentials *file.CredentialRepo
	resolver    ports.Resolver
	transport   *ssh.Transport
	dispatcher  ports.Dispatcher
}

// newLogger writes to <config-dir>/logs. A config directory that does not exist
// gets a no-op logger so a failed startup leaves nothing behind.
func newLogger(fp ports.FlagsProvider, cfg ports.ConfigProvider) (*zap.SugaredLogger, error) {
	if _, err := os.Stat(cfg.ConfigDir()); errors.Is(err, fs.ErrNotExist) {
		return zap.NewNop().Sugar(), nil
	}

	log, err := logger.New(cfg.LogPath(logFileName), fp.IsDebug())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// loadApplication reads settings, inventory and credentials. A missing
// inventory is fatal; missing credentials only produce a warning.
func loadApplication(fp ports.FlagsProvider, stdout, stderr io.Writer) (*application, error) {
	cfg := config.NewOSConfig(fp.GetFlag(flags.FlagConfigDir))

	log, err := newLogger(fp, cfg)
	if err != nil {
		return nil, err
	}

	settings, err := file.NewSettingsManager(cfg.ConfigPath(domain.SettingsFile)).Load()
	if err != nil {
		log.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if path := fp.GetFlag(flags.FlagInventory); path != "" {
		settings.InventoryFile = path
	}
	if path := fp.GetFlag(flags.FlagCredentials); path != "" {
		settings.CredentialsFile = path
	}

	inventory, err := file.NewInventoryRepo(log, settings.InventoryFile)
	if err != nil {
		log.Errorw("failed to load inventory", "path", settings.InventoryFile, "error", err)
		return nil, err
	}

	credentials, err := file.NewCredentialRepo(log, settings.CredentialsFile)
	if err != nil {
		log.Errorw("failed to load credentials", "path", settings.CredentialsFile, "error", err)
		return nil, err
	}
	if !credentials.Found() {
		fmt.Fprintf(stderr, "⚠ Credentials file not found: %s\n", credentials.Path())
		fmt.Fprintf(stderr, "   Use %s.template as a model\n", domain.DefaultCredentialsFile)
	}

	resolver := services.NewResolver(log, inventory, credentials)
	transport := ssh.NewTransport(log, settings.Transport)

	return &application{
		logger:      log,
		settings:    settings,
		inventory:   inventory,
		credentials: credentials,
		resolver:    resolver,
		transport:   transport,
		dispatcher:  services.NewDispatcher(log, resolver, transport, settings, stdout),
	}, nil
}

// commandLine renders the ssh invocation an interactive session would use.
func (a *application) commandLine(conn domain.ResolvedConnection) string {
	return ssh.CommandLine(a.settings.Transport, domain.Invocation{
		Connection:     conn,
		ConnectTimeout: a.settings.ConnectTimeout,
	})
}

func (a *application) close() {
	//nolint:errcheck // log.Sync may return an error which is safe to ignore here
	a.logger.Sync()
}
