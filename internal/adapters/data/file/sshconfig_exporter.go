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
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/ports"
	"github.com/kevinburke/ssh_config"
	"go.uber.org/zap"
)

const GeneratedByComment = "# Generated by fleetssh from the server inventory"

// SSHConfigExporter renders resolved servers as an OpenSSH client config.
type SSHConfigExporter struct {
	resolver ports.Resolver
	logger   *zap.SugaredLogger
}

func NewSSHConfigExporter(logger *zap.SugaredLogger, r ports.Resolver) *SSHConfigExporter {
	return &SSHConfigExporter{resolver: r, logger: logger}
}

// Export writes one Host block per server. Servers that fail to resolve are
// skipped and returned so the caller can report them.
func (e *SSHConfigExporter) Export(w io.Writer, servers []domain.ServerRecord) ([]string, error) {
	var hosts []*ssh_config.Host
	var skipped []string

	for _, server := range servers {
		conn, err := e.resolver.Resolve(server.Name)
		if err != nil {
			e.logger.Warnw("skipping server in ssh config export", "server", server.Name, "error", err)
			skipped = append(skipped, server.Name)
			continue
		}
		host, err := hostBlock(conn)
		if err != nil {
			return skipped, err
		}
		hosts = append(hosts, host)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", GeneratedByComment)
	for i, host := range hosts {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(host.String())
	}
	return skipped, bw.Flush()
}

func hostBlock(conn domain.ResolvedConnection) (*ssh_config.Host, error) {
	pattern, err := ssh_config.NewPattern(conn.Server.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid host alias %q: %w", conn.Server.Name, err)
	}

	nodes := []ssh_config.Node{
		&ssh_config.KV{Key: "HostName", Value: conn.Host},
		&ssh_config.KV{Key: "User", Value: conn.User},
		&ssh_config.KV{Key: "Port", Value: strconv.Itoa(conn.Port)},
	}
	if conn.SSHKeyPath != "" {
		nodes = append(nodes, &ssh_config.KV{Key: "IdentityFile", Value: conn.SSHKeyPath})
	}
	if conn.Server.Description != "" {
		nodes = append(nodes, &ssh_config.Empty{Comment: " " + conn.Server.Description})
	}

	return &ssh_config.Host{
		Patterns: []*ssh_config.Pattern{pattern},
		Nodes:    nodes,
	}, nil
}
