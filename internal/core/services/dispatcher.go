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

package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/ports"
	"go.uber.org/zap"
)

// TestCommand is the no-op remote command used to check reachability.
const TestCommand = "echo 'Connection successful'"

type dispatcher struct {
	resolver  ports.Resolver
	transport ports.Transport
	settings  domain.Settings
	out       io.Writer
	logger    *zap.SugaredLogger
}

// NewDispatcher creates a dispatcher that reports progress to out.
func NewDispatcher(logger *zap.SugaredLogger, r ports.Resolver, t ports.Transport, settings domain.Settings, out io.Writer) *dispatcher {
	if out == nil {
		out = io.Discard
	}
	return &dispatcher{
		resolver:  r,
		transport: t,
		settings:  settings,
		out:       out,
		logger:    logger,
	}
}

// Test checks that serverName accepts a connection and runs a no-op command.
// Every failure is reported and turned into false.
func (d *dispatcher) Test(ctx context.Context, serverName string) bool {
	conn, err := d.resolver.Resolve(serverName)
	if err != nil {
		d.logger.Warnw("resolution failed", "server", serverName, "error", err)
		d.printf("✗ Connection test error: %v\n", err)
		return false
	}

	d.printf("\nTesting connection to %s\n", serverName)
	d.printf("   Host: %s\n", conn.Host)
	d.printf("   User: %s\n", conn.User)
	d.printf("   Port: %d\n", conn.Port)

	res, err := d.transport.Run(ctx, domain.Invocation{
		Connection:     conn,
		Command:        TestCommand,
		ConnectTimeout: d.settings.ConnectTimeout,
		Timeout:        d.settings.TestTimeout,
	})
	if err != nil {
		d.logger.Errorw("connection test failed", "server", serverName, "error", err)
		d.printf("✗ Connection test error: %v\n", err)
		return false
	}
	if !res.Success() {
		d.logger.Warnw("connection test exited nonzero", "server", serverName,
			"exit_code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		d.printf("✗ Connection to %s failed\n", serverName)
		d.printf("   Error: %s\n", strings.TrimSpace(res.Stderr))
		return false
	}

	d.logger.Infow("connection test succeeded", "server", serverName, "duration", res.Duration)
	d.printf("✓ Connected to %s\n", serverName)
	return true
}

// Execute runs command on serverName and returns its standard output.
// The boolean is false on any failure, in which case the output is empty.
func (d *dispatcher) Execute(ctx context.Context, serverName, command string) (string, bool) {
	conn, err := d.resolver.Resolve(serverName)
	if err != nil {
		d.logger.Warnw("resolution failed", "server", serverName, "error", err)
		d.printf("✗ Execution error: %v\n", err)
		return "", false
	}

	d.printf("\nRunning on %s: %s\n", serverName, command)

	res, err := d.transport.Run(ctx, domain.Invocation{
		Connection:     conn,
		Command:        command,
		ConnectTimeout: d.settings.ConnectTimeout,
		Timeout:        d.settings.ExecTimeout,
	})
	if err != nil {
		d.logger.Errorw("command failed", "server", serverName, "command", command, "error", err)
		d.printf("✗ Execution error: %v\n", err)
		return "", false
	}
	if !res.Success() {
		d.logger.Warnw("command exited nonzero", "server", serverName, "command", command,
			"exit_code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		d.printf("✗ Execution failed\n")
		d.printf("   Error: %s\n", strings.TrimSpace(res.Stderr))
		return "", false
	}

	d.logger.Infow("command succeeded", "server", serverName, "command", command, "duration", res.Duration)
	d.printf("✓ Command completed\n")
	d.printf("\nOutput:\n%s", res.Stdout)
	return res.Stdout, true
}

func (d *dispatcher) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}
