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

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Adembc/fleetssh/internal/core/domain"
)

// PrintServers writes every server with its description, both addresses and group.
func PrintServers(w io.Writer, servers []domain.ServerRecord) {
	fmt.Fprint(w, "\nAvailable servers:\n\n")
	if len(servers) == 0 {
		fmt.Fprint(w, "  (none)\n\n")
		return
	}
	for _, s := range servers {
		fmt.Fprintf(w, "  • %s - %s\n", cellPad(s.Name, 20), orNA(s.Description))
		fmt.Fprintf(w, "    IP Public:    %s\n", orNA(s.IPPublic))
		fmt.Fprintf(w, "    IP Wireguard: %s\n", orNA(s.IPWireguard))
		fmt.Fprintf(w, "    Group:        %s\n", orNA(s.Group))
		fmt.Fprintln(w)
	}
}

// PrintGroups writes every group with its description and members.
func PrintGroups(w io.Writer, groups []domain.GroupRecord) {
	fmt.Fprint(w, "\nServer groups:\n\n")
	if len(groups) == 0 {
		fmt.Fprint(w, "  (none)\n\n")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "  • %s - %s\n", cellPad(g.Name, 20), orNA(g.Description))
		fmt.Fprintf(w, "    Servers: %s\n", strings.Join(g.Servers, ", "))
		fmt.Fprintln(w)
	}
}

// PrintResolved writes the effective connection parameters and the ssh command line.
func PrintResolved(w io.Writer, conn domain.ResolvedConnection, commandLine string) {
	fmt.Fprintf(w, "\n%s\n", conn.Server.Name)
	fmt.Fprintf(w, "   Host: %s\n", conn.Host)
	fmt.Fprintf(w, "   User: %s\n", conn.User)
	fmt.Fprintf(w, "   Port: %d\n", conn.Port)
	fmt.Fprintf(w, "   Key:  %s\n", orNA(conn.SSHKeyPath))
	fmt.Fprintf(w, "\n   %s\n", commandLine)
}
