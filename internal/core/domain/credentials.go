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

// DefaultPort is the port used when no credential set provides one.
const DefaultPort = 22

// CredentialSet shapes how a server is reached. A nil field is "not present"
// and lets the next tier of the merge decide.
type CredentialSet struct {
	ConnectVia *AddressField
	Port       *int
	SSHKeyPath *string
}

// EffectiveCredentials is a CredentialSet with every fallback applied.
type EffectiveCredentials struct {
	ConnectVia AddressField
	Port       int
	SSHKeyPath string
}

// MergeCredentials layers override over def field by field, then fills any
// field still missing with the hardcoded fallback.
func MergeCredentials(def, override CredentialSet) EffectiveCredentials {
	eff := EffectiveCredentials{
		ConnectVia: AddressPublic,
		Port:       DefaultPort,
	}

	if v := pick(override.ConnectVia, def.ConnectVia); v != nil {
		eff.ConnectVia = *v
	}
	if v := pick(override.Port, def.Port); v != nil {
		eff.Port = *v
	}
	if v := pick(override.SSHKeyPath, def.SSHKeyPath); v != nil {
		eff.SSHKeyPath = *v
	}
	return eff
}

func pick[T any](tiers ...*T) *T {
	for _, t := range tiers {
		if t != nil {
			return t
		}
	}
	return nil
}

// HostCandidates returns the ordered address fields tried when resolving a
// host: the preferred field first, then ip_public.
func HostCandidates(preferred AddressField) []AddressField {
	if preferred == AddressPublic || !preferred.Valid() {
		return []AddressField{AddressPublic}
	}
	return []AddressField{preferred, AddressPublic}
}
