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
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound means the inventory file is missing. Fatal at startup.
	ErrConfigNotFound = errors.New("inventory file not found")
	// ErrCredentialsNotFound means the credentials file is missing. Callers
	// log it and continue with empty defaults.
	ErrCredentialsNotFound = errors.New("credentials file not found")
	// ErrInvalidCredentials means the credentials file has a value that cannot be used.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnknownServer    = errors.New("unknown server")
	ErrUnresolvableHost = errors.New("no usable address")
	ErrInvalidPort      = errors.New("port must be a number between 1 and 65535")

	ErrTransportFailure = errors.New("transport failure")
	ErrTransportTimeout = fmt.Errorf("%w: timed out", ErrTransportFailure)
)
