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
	"os"
	"path/filepath"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// SettingsManager reads and writes fleetssh.yaml.
type SettingsManager struct {
	filePath      string
	configDirPath string
}

func NewSettingsManager(filePath string) *SettingsManager {
	return &SettingsManager{
		filePath:      filePath,
		configDirPath: filepath.Dir(filePath),
	}
}

// Load returns the settings file merged over the defaults. A missing file
// yields the defaults.
func (sm *SettingsManager) Load() (domain.Settings, error) {
	data, err := os.ReadFile(sm.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(sm.configDirPath), nil
		}
		return domain.DefaultSettings(sm.configDirPath), err
	}

	var settings domain.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return domain.DefaultSettings(sm.configDirPath), err
	}

	return settings.WithDefaults(sm.configDirPath), nil
}

func (sm *SettingsManager) Save(settings domain.Settings) error {
	if err := os.MkdirAll(sm.configDirPath, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(sm.filePath, data, 0o600)
}
