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

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Adembc/fleetssh/internal/core/ports"
)

const (
	EnvConfigDir     = "FLEETSSH_CONFIG_DIR"
	DefaultConfigDir = ".ssh-config"
)

type OSConfig struct {
	homeDir   string
	configDir string
}

// NewOSConfig resolves the config directory from dir, then FLEETSSH_CONFIG_DIR,
// then DefaultConfigDir relative to the working directory. A leading ~/ is
// expanded against the home directory.
func NewOSConfig(dir string) ports.ConfigProvider {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	c := &OSConfig{homeDir: home}
	if dir == "" {
		dir = c.GetEnvOrDefault(EnvConfigDir, DefaultConfigDir)
	}
	c.configDir = c.expand(dir)
	return c
}

func (c *OSConfig) expand(path string) string {
	if c.homeDir != "" && (path == "~" || strings.HasPrefix(path, "~/")) {
		return filepath.Join(c.homeDir, strings.TrimPrefix(path, "~"))
	}
	return path
}

func (c *OSConfig) HomeDir() string {
	return c.homeDir
}

func (c *OSConfig) ConfigDir() string {
	return c.configDir
}

func (c *OSConfig) ConfigPath(elems ...string) string {
	return filepath.Join(c.configDir, filepath.Join(elems...))
}

func (c *OSConfig) LogPath(filename string) string {
	return c.ConfigPath("logs", filename)
}

func (c *OSConfig) GetEnvOrDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}
