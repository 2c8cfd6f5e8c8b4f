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

package file

import (
	"fmt"
	"sort"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"go.uber.org/zap"
)

type inventoryDocument struct {
	Servers map[string]serverDocument `json:"servers" yaml:"servers"`
	Groups  map[string]groupDocument  `json:"groups" yaml:"groups"`
}

type serverDocument struct {
	IPPublic    string `json:"ip_public" yaml:"ip_public"`
	IPWireguard string `json:"ip_wireguard" yaml:"ip_wireguard"`
	User        string `json:"user" yaml:"user"`
	Description string `json:"description" yaml:"description"`
	Group       string `json:"group" yaml:"group"`
}

type groupDocument struct {
	Description string   `json:"description" yaml:"description"`
	Servers     []string `json:"servers" yaml:"servers"`
}

// InventoryRepo holds the servers and groups read from the inventory file.
type InventoryRepo struct {
	servers map[string]domain.ServerRecord
	groups  map[string]domain.GroupRecord
	logger  *zap.SugaredLogger
}

// NewInventoryRepo reads the inventory at path. A missing file is fatal and
// reported as domain.ErrConfigNotFound.
func NewInventoryRepo(logger *zap.SugaredLogger, path string) (*InventoryRepo, error) {
	exists, err := fileExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat inventory file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
	}

	var doc inventoryDocument
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	repo := &InventoryRepo{
		servers: make(map[string]domain.ServerRecord, len(doc.Servers)),
		groups:  make(map[string]domain.GroupRecord, len(doc.Groups)),
		logger:  logger,
	}
	for name, s := range doc.Servers {
		repo.servers[name] = domain.ServerRecord{
			Name:        name,
			IPPublic:    s.IPPublic,
			IPWireguard: s.IPWireguard,
			User:        s.User,
			Description: s.Description,
			Group:       s.Group,
		}
	}
	for name, g := range doc.Groups {
		repo.groups[name] = domain.GroupRecord{
			Name:        name,
			Description: g.Description,
			Servers:     g.Servers,
		}
		for _, member := range g.Servers {
			if _, ok := repo.servers[member]; !ok {
				logger.Debugw("group member not in inventory", "group", name, "server", member)
			}
		}
	}

	logger.Infow("inventory loaded", "path", path, "servers", len(repo.servers), "groups", len(repo.groups))
	return repo, nil
}

func (r *InventoryRepo) GetServer(name string) (domain.ServerRecord, bool) {
	s, ok := r.servers[name]
	return s, ok
}

// ListServers returns every server sorted by name.
func (r *InventoryRepo) ListServers() []domain.ServerRecord {
	servers := make([]domain.ServerRecord, 0, len(r.servers))
	for _, s := range r.servers {
		servers = append(servers, s)
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	return servers
}

func (r *InventoryRepo) GetGroup(name string) (domain.GroupRecord, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// ListGroups returns every group sorted by name. Member order is kept as written.
func (r *InventoryRepo) ListGroups() []domain.GroupRecord {
	groups := make([]domain.GroupRecord, 0, len(r.groups))
	for _, g := range r.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}
