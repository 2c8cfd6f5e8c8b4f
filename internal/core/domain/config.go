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

package domain

import (
	"path/filepath"
	"time"
)

const (
	DefaultInventoryFile   = "ssh_servers.json"
	DefaultCredentialsFile = "ssh_credentials.json"
	SettingsFile           = "fleetssh.yaml"
)

// Settings represents the application configuration
type Settings struct {
	// Transport is the remote-shell binary invoked for every command.
	Transport string `yaml:"transport"`

	// ConnectTimeout bounds connection establishment inside the transport.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// TestTimeout bounds the whole reachability check.
	TestTimeout time.Duration `yaml:"test_timeout"`

	// ExecTimeout bounds the whole remote command.
	ExecTimeout time.Duration `yaml:"exec_timeout"`

	InventoryFile   string `yaml:"inventory_file"`
	CredentialsFile string `yaml:"credentials_file"`
}

// DefaultSettings returns the default configuration rooted at the provided config directory
func DefaultSettings(configDirPath string) Settings {
	return Settings{
		Transport:       "ssh",
		ConnectTimeout:  10 * time.Second,
		TestTimeout:     15 * time.Second,
		ExecTimeout:     30 * time.Second,
		InventoryFile:   filepath.Join(configDirPath, DefaultInventoryFile),
		CredentialsFile: filepath.Join(configDirPath, DefaultCredentialsFile),
	}
}

// WithDefaults fills zero fields of s from DefaultSettings.
func (s Settings) WithDefaults(configDirPath string) Settings {
	def := DefaultSettings(configDirPath)
	if s.Transport == "" {
		s.Transport = def.Transport
	}
	if s.ConnectTimeout <= 0 {
		s.ConnectTimeout = def.ConnectTimeout
	}
	if s.TestTimeout <= 0 {
		s.TestTimeout = def.TestTimeout
	}
	if s.ExecTimeout <= 0 {
		s.ExecTimeout = def.ExecTimeout
	}
	if s.InventoryFile == "" {
		s.InventoryFile = def.InventoryFile
	} else if !filepath.IsAbs(s.InventoryFile) {
		s.InventoryFile = filepath.Join(configDirPath, s.InventoryFile)
	}
	if s.CredentialsFile == "" {
		s.CredentialsFile = def.CredentialsFile
	} else if !filepath.IsAbs(s.CredentialsFile) {
		s.CredentialsFile = filepath.Join(configDirPath, s.CredentialsFile)
	}
	return s
}
