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

	"github.com/Adembc/fleetssh/internal/core/domain"
	"go.uber.org/zap"
)

type credentialsDocument struct {
	Default         credentialDocument            `json:"default" yaml:"default"`
	ServerOverrides map[string]credentialDocument `json:"server_overrides" yaml:"server_overrides"`
}

type credentialDocument struct {
	ConnectVia *string `json:"connect_via" yaml:"connect_via"`
	Port       *int    `json:"port" yaml:"port"`
	SSHKeyPath *string `json:"ssh_key_path" yaml:"ssh_key_path"`
}

func (d credentialDocument) toDomain(scope string) (domain.CredentialSet, error) {
	set := domain.CredentialSet{Port: d.Port, SSHKeyPath: d.SSHKeyPath}
	if d.ConnectVia != nil {
		field := domain.AddressField(*d.ConnectVia)
		if !field.Valid() {
			return domain.CredentialSet{}, fmt.Errorf("%w: %s connect_via %q must be %q or %q",
				domain.ErrInvalidCredentials, scope, *d.ConnectVia, domain.AddressPublic, domain.AddressWireguard)
		}
		set.ConnectVia = &field
	}
	return set, nil
}

// CredentialRepo holds the default credential set and per-server overrides.
type CredentialRepo struct {
	path      string
	found     bool
	def       domain.CredentialSet
	overrides map[string]domain.CredentialSet
	logger    *zap.SugaredLogger
}

// NewCredentialRepo reads the credentials at path. A missing file is not an
// error: the repo is returned empty and Found reports false.
func NewCredentialRepo(logger *zap.SugaredLogger, path string) (*CredentialRepo, error) {
	repo := &CredentialRepo{
		path:      path,
		overrides: make(map[string]domain.CredentialSet),
		logger:    logger,
	}

	exists, err := fileExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat credentials file: %w", err)
	}
	if !exists {
		logger.Warnw("using empty default credentials", "path", path, "error", domain.ErrCredentialsNotFound)
		return repo, nil
	}

	var doc credentialsDocument
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	if repo.def, err = doc.Default.toDomain("default"); err != nil {
		return nil, err
	}
	for name, o := range doc.ServerOverrides {
		set, err := o.toDomain("server_overrides." + name)
		if err != nil {
			return nil, err
		}
		repo.overrides[name] = set
	}
	repo.found = true

	logger.Infow("credentials loaded", "path", path, "overrides", len(repo.overrides))
	return repo, nil
}

// Found reports whether the credentials file existed.
func (r *CredentialRepo) Found() bool {
	return r.found
}

func (r *CredentialRepo) Path() string {
	return r.path
}

func (r *CredentialRepo) Default() domain.CredentialSet {
	return r.def
}

func (r *CredentialRepo) Override(serverName string) (domain.CredentialSet, bool) {
	set, ok := r.overrides[serverName]
	return set, ok
}
