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

// AddressField names the ServerRecord field used to reach a server.
type AddressField string

const (
	AddressPublic    AddressField = "ip_public"
	AddressWireguard AddressField = "ip_wireguard"
)

// DefaultUser is used when a server record does not name a login user.
const DefaultUser = "root"

// Valid reports whether f is a known address field.
func (f AddressField) Valid() bool {
	switch f {
	case AddressPublic, AddressWireguard:
		return true
	}
	return false
}

// ServerRecord is one entry of the inventory. Empty strings mean "not set".
type ServerRecord struct {
	Name        string
	IPPublic    string
	IPWireguard string
	User        string
	Description string
	Group       string
}

// Address returns the value of the given address field and whether it is set.
func (s ServerRecord) Address(field AddressField) (string, bool) {
	var v string
	switch field {
	case AddressPublic:
		v = s.IPPublic
	case AddressWireguard:
		v = s.IPWireguard
	}
	return v, v != ""
}

// LoginUser returns the record's user or DefaultUser.
func (s ServerRecord) LoginUser() string {
	if s.User != "" {
		return s.User
	}
	return DefaultUser
}

// GroupRecord lists server names under a shared label. Members are not
// checked against the inventory.
type GroupRecord struct {
	Name        string
	Description string
	Servers     []string
}
