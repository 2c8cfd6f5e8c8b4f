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

import "time"

// ResolvedConnection is the concrete set of parameters needed to reach one
// server. It is built per call and never stored.
type ResolvedConnection struct {
	Host       string
	User       string
	Port       int
	SSHKeyPath string

	// Server is the inventory record the connection was resolved from.
	Server ServerRecord
}

// Target returns the user@host form expected by the transport.
func (c ResolvedConnection) Target() string {
	return c.User + "@" + c.Host
}

// Invocation is one remote command to run over a resolved connection.
type Invocation struct {
	Connection     ResolvedConnection
	Command        string
	ConnectTimeout time.Duration
	Timeout        time.Duration
}

// Result carries what the transport captured from a finished invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Success reports whether the remote process exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}
