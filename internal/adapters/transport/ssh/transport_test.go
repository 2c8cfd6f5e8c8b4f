package ssh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"go.uber.org/zap/zaptest"
)

func helperCommandFactory() commandFactory {
	return func(ctx context.Context, _ string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--"}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")
		return cmd
	}
}

func newHelperTransport(t *testing.T) *Transport {
	tr := NewTransport(zaptest.NewLogger(t).Sugar(), "ssh")
	tr.newCommand = helperCommandFactory()
	return tr
}

func invocation(command string, timeout time.Duration) domain.Invocation {
	return domain.Invocation{
		Connection: domain.ResolvedConnection{
			Host: "1.2.3.4",
			User: "deploy",
			Port: 22,
		},
		Command:        command,
		ConnectTimeout: 10 * time.Second,
		Timeout:        timeout,
	}
}

func TestBuildArgs(t *testing.T) {
	inv := invocation("uptime", 30*time.Second)

	want := []string{"-o", "ConnectTimeout=10", "-o", "StrictHostKeyChecking=no", "-p", "22", "deploy@1.2.3.4", "uptime"}
	if got := BuildArgs(inv); !reflect.DeepEqual(got, want) {
		t.Errorf("BuildArgs() = %v, want %v", got, want)
	}

	inv.Connection.SSHKeyPath = "/k"
	inv.Connection.Port = 2222
	want = []string{"-i", "/k", "-o", "ConnectTimeout=10", "-o", "StrictHostKeyChecking=no", "-p", "2222", "deploy@1.2.3.4", "uptime"}
	if got := BuildArgs(inv); !reflect.DeepEqual(got, want) {
		t.Errorf("BuildArgs() with key = %v, want %v", got, want)
	}
}

func TestTimeoutSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{0, 1},
		{500 * time.Millisecond, 1},
		{10 * time.Second, 10},
		{10*time.Second + time.Millisecond, 11},
	}
	for _, tt := range tests {
		if got := timeoutSeconds(tt.in); got != tt.want {
			t.Errorf("timeoutSeconds(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"deploy@1.2.3.4", "deploy@1.2.3.4"},
		{"ConnectTimeout=10", "ConnectTimeout=10"},
		{"/keys/id_ed25519", "/keys/id_ed25519"},
		{"/keys/a#b", "'/keys/a#b'"},
		{"echo hi!", "'echo hi!'"},
		{"~/key", "'~/key'"},
		{"{a,b}", "'{a,b}'"},
		{"it's", `'it'\''s'`},
	}
	for _, tt := range tests {
		if got := quoteIfNeeded(tt.in); got != tt.want {
			t.Errorf("quoteIfNeeded(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCommandLine(t *testing.T) {
	inv := invocation("df -h /", 0)
	inv.Connection.SSHKeyPath = "/keys/my key"

	want := "ssh -i '/keys/my key' -o ConnectTimeout=10 -o StrictHostKeyChecking=no -p 22 deploy@1.2.3.4 'df -h /'"
	if got := CommandLine("ssh", inv); got != want {
		t.Errorf("CommandLine() =\n%s\nwant\n%s", got, want)
	}

	inv.Command = ""
	want = "ssh -i '/keys/my key' -o ConnectTimeout=10 -o StrictHostKeyChecking=no -p 22 deploy@1.2.3.4"
	if got := CommandLine("ssh", inv); got != want {
		t.Errorf("CommandLine() without command =\n%s\nwant\n%s", got, want)
	}
}

func TestTransportRun_Success(t *testing.T) {
	res, err := newHelperTransport(t).Run(context.Background(), invocation("uptime", 30*time.Second))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Success() {
		t.Fatalf("expected success, got exit %d (stderr %q)", res.ExitCode, res.Stderr)
	}
	if res.Stdout != "5 days" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "5 days")
	}
}

func TestTransportRun_PassesArguments(t *testing.T) {
	inv := invocation("echo-args", 30*time.Second)
	inv.Connection.SSHKeyPath = "/k"

	res, err := newHelperTransport(t).Run(context.Background(), inv)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := res.Stdout, strings.Join(BuildArgs(inv), "\n"); got != want {
		t.Errorf("helper saw args %q, want %q", got, want)
	}
}

func TestTransportRun_NonZeroExit(t *testing.T) {
	res, err := newHelperTransport(t).Run(context.Background(), invocation("fail", 30*time.Second))
	if err != nil {
		t.Fatalf("expected nil error for nonzero exit, got %v", err)
	}
	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "command failed") {
		t.Errorf("Stderr = %q", res.Stderr)
	}
}

func TestTransportRun_Timeout(t *testing.T) {
	_, err := newHelperTransport(t).Run(context.Background(), invocation("hang", 200*time.Millisecond))
	if !errors.Is(err, domain.ErrTransportTimeout) {
		t.Fatalf("expected ErrTransportTimeout, got %v", err)
	}
	if !errors.Is(err, domain.ErrTransportFailure) {
		t.Fatalf("expected timeout to wrap ErrTransportFailure, got %v", err)
	}
}

func TestTransportRun_StartFailure(t *testing.T) {
	tr := NewTransport(zaptest.NewLogger(t).Sugar(), "/nonexistent/fleetssh-ssh")

	_, err := tr.Run(context.Background(), invocation("uptime", time.Second))
	if !errors.Is(err, domain.ErrTransportFailure) {
		t.Fatalf("expected ErrTransportFailure, got %v", err)
	}
}

func TestTransportRun_NilCommand(t *testing.T) {
	tr := NewTransport(zaptest.NewLogger(t).Sugar(), "ssh")
	tr.newCommand = func(context.Context, string, ...string) *exec.Cmd { return nil }

	if _, err := tr.Run(context.Background(), invocation("uptime", time.Second)); !errors.Is(err, domain.ErrTransportFailure) {
		t.Fatalf("expected ErrTransportFailure, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			sshArgs := args[i+1:]
			if len(sshArgs) == 0 {
				os.Exit(2)
			}
			switch sshArgs[len(sshArgs)-1] {
			case "uptime":
				fmt.Fprint(os.Stdout, "5 days")
				os.Exit(0)
			case "echo-args":
				fmt.Fprint(os.Stdout, strings.Join(sshArgs, "\n"))
				os.Exit(0)
			case "fail":
				fmt.Fprint(os.Stderr, "command failed\n")
				os.Exit(1)
			case "hang":
				time.Sleep(10 * time.Second)
				os.Exit(0)
			default:
				fmt.Fprint(os.Stderr, "unknown scenario\n")
				os.Exit(1)
			}
		}
	}
	os.Exit(1)
}
