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

package services

import (
	"fmt"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/ports"
	"go.uber.org/zap"
)

type resolver struct {
	inventory   ports.InventoryRepository
	credentials ports.CredentialRepository
	logger      *zap.SugaredLogger
}

// NewResolver creates a resolver over stores that were loaded once at startup.
func NewResolver(logger *zap.SugaredLogger, inv ports.InventoryRepository, creds ports.CredentialRepository) *resolver {
	return &resolver{
		inventory:   inv,
		credentials: creds,
		logger:      logger,
	}
}

// Resolve computes the effective connection parameters for serverName.
func (r *resolver) Resolve(serverName string) (domain.ResolvedConnection, error) {
	server, ok := r.inventory.GetServer(serverName)
	if !ok {
		return domain.ResolvedConnection{}, fmt.Errorf("%w: %s", domain.ErrUnknownServer, serverName)
	}

	override, hasOverride := r.credentials.Override(serverName)
	creds := domain.MergeCredentials(r.credentials.Default(), override)

	host, field, err := resolveHost(server, creds.ConnectVia)
	if err != nil {
		return domain.ResolvedConnection{}, err
	}
	if field != creds.ConnectVia {
		r.logger.Debugw("preferred address missing, using fallback",
			"server", serverName, "preferred", creds.ConnectVia, "used", field)
	}

	if creds.Port < 1 || creds.Port > 65535 {
		return domain.ResolvedConnection{}, fmt.Errorf("%w: %s has port %d", domain.ErrInvalidPort, serverName, creds.Port)
	}

	conn := domain.ResolvedConnection{
		Host:       host,
		User:       server.LoginUser(),
		Port:       creds.Port,
		SSHKeyPath: creds.SSHKeyPath,
		Server:     server,
	}
	r.logger.Debugw("resolved connection",
		"server", serverName, "host", conn.Host, "user", conn.User, "port", conn.Port,
		"key", conn.SSHKeyPath, "override", hasOverride)
	return conn, nil
}

// resolveHost walks the candidate address fields in order and returns the first one set.
func resolveHost(server domain.ServerRecord, preferred domain.AddressField) (string, domain.AddressField, error) {
	candidates := domain.HostCandidates(preferred)
	for _, field := range candidates {
		if addr, ok := server.Address(field); ok {
			return addr, field, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s has none of %v", domain.ErrUnresolvableHost, server.Name, candidates)
}
