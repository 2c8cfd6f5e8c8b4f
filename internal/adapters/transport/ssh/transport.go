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

package ssh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"go.uber.org/zap"
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 2 * time.Second

type commandFactory func(ctx context.Context, name string, args ...string) *exec.Cmd

// Transport runs commands through the system ssh client.
type Transport struct {
	binary     string
	newCommand commandFactory
	logger     *zap.SugaredLogger
}

// NewTransport creates a transport that invokes binary (usually "ssh").
func NewTransport(logger *zap.SugaredLogger, binary string) *Transport {
	if binary == "" {
		binary = "ssh"
	}
	return &Transport{
		binary:     binary,
		newCommand: exec.CommandContext,
		logger:     logger,
	}
}

// BuildArgs returns the ssh argument vector for inv, without the binary name.
// Format: [-i KEY] -o ConnectTimeout=N -o StrictHostKeyChecking=no -p PORT user@host [command]
func BuildArgs(inv domain.Invocation) []string {
	conn := inv.Connection
	args := make([]string, 0, 10)
	if conn.SSHKeyPath != "" {
		args = append(args, "-i", conn.SSHKeyPath)
	}
	args = append(args,
		"-o", "ConnectTimeout="+strconv.Itoa(timeoutSeconds(inv.ConnectTimeout)),
		"-o", "StrictHostKeyChecking=no",
		"-p", strconv.Itoa(conn.Port),
		conn.Target(),
	)
	if inv.Command != "" {
		args = append(args, inv.Command)
	}
	return args
}

// timeoutSeconds rounds d up to whole seconds, with a minimum of one.
func timeoutSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// Run executes inv and waits for it under inv.Timeout. A nonzero exit is
// returned in Result with a nil error; a timeout or a process that cannot be
// started is an error wrapping domain.ErrTransportFailure.
func (t *Transport) Run(ctx context.Context, inv domain.Invocation) (domain.Result, error) {
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	args := BuildArgs(inv)
	cmd := t.newCommand(ctx, t.binary, args...)
	if cmd == nil {
		return domain.Result{}, fmt.Errorf("%w: failed to build command", domain.ErrTransportFailure)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	t.logger.Debugw("transport start", "binary", t.binary, "args", args, "timeout", inv.Timeout)

	start := time.Now()
	err := cmd.Run()
	res := domain.Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		t.logger.Warnw("transport interrupted", "target", inv.Connection.Target(), "error", ctxErr, "duration", res.Duration)
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return res, fmt.Errorf("%w after %s", domain.ErrTransportTimeout, inv.Timeout)
		}
		return res, fmt.Errorf("%w: %v", domain.ErrTransportFailure, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			t.logger.Debugw("transport exited nonzero", "target", inv.Connection.Target(), "exit_code", res.ExitCode)
			return res, nil
		}
		res.ExitCode = -1
		return res, fmt.Errorf("%w: %v", domain.ErrTransportFailure, err)
	}

	t.logger.Debugw("transport end", "target", inv.Connection.Target(), "duration", res.Duration)
	return res, nil
}

// CommandLine renders the full ssh invocation for display and copying.
func CommandLine(binary string, inv domain.Invocation) string {
	parts := append([]string{binary}, BuildArgs(inv)...)
	for i, p := range parts {
		parts[i] = quoteIfNeeded(p)
	}
	return strings.Join(parts, " ")
}
