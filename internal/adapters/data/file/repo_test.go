package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Adembc/fleetssh/internal/core/domain"
	"github.com/Adembc/fleetssh/internal/core/services"
	"go.uber.org/zap/zaptest"
)

const web1Inventory = `{
  "servers": {
    "web1": {"ip_public": "1.2.3.4", "ip_wireguard": "10.0.0.1", "user": "deploy", "description": "front", "group": "web", "rack": "r12"},
    "db1": {"ip_public": "5.6.7.8", "group": "db"}
  },
  "groups": {
    "web": {"description": "web tier", "servers": ["web1", "web2"]},
    "db": {"description": "databases", "servers": ["db1"]}
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNewInventoryRepo_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ssh_servers.json", web1Inventory)

	repo, err := NewInventoryRepo(zaptest.NewLogger(t).Sugar(), path)
	if err != nil {
		t.Fatalf("NewInventoryRepo() error = %v", err)
	}

	web1, ok := repo.GetServer("web1")
	if !ok {
		t.Fatalf("expected web1 to exist")
	}
	want := domain.ServerRecord{Name: "web1", IPPublic: "1.2.3.4", IPWireguard: "10.0.0.1", User: "deploy", Description: "front", Group: "web"}
	if web1 != want {
		t.Errorf("web1 = %+v, want %+v", web1, want)
	}

	servers := repo.ListServers()
	if len(servers) != 2 || servers[0].Name != "db1" || servers[1].Name != "web1" {
		t.Errorf("ListServers() not sorted by name: %+v", servers)
	}

	web, ok := repo.GetGroup("web")
	if !ok {
		t.Fatalf("expected group web to exist")
	}
	// web2 is not in the inventory and is kept anyway.
	if len(web.Servers) != 2 || web.Servers[1] != "web2" {
		t.Errorf("web.Servers = %v", web.Servers)
	}
	if groups := repo.ListGroups(); len(groups) != 2 || groups[0].Name != "db" {
		t.Errorf("ListGroups() = %+v", groups)
	}
}

func TestNewInventoryRepo_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fleet.yaml", `
servers:
  web1:
    ip_public: 1.2.3.4
    ip_wireguard: 10.0.0.1
    user: deploy
groups:
  web:
    description: web tier
    servers: [web1]
`)

	repo, err := NewInventoryRepo(zaptest.NewLogger(t).Sugar(), path)
	if err != nil {
		t.Fatalf("NewInventoryRepo() error = %v", err)
	}
	if s, ok := repo.GetServer("web1"); !ok || s.IPWireguard != "10.0.0.1" || s.User != "deploy" {
		t.Errorf("GetServer(web1) = %+v, %v", s, ok)
	}
	if g, ok := repo.GetGroup("web"); !ok || g.Description != "web tier" {
		t.Errorf("GetGroup(web) = %+v, %v", g, ok)
	}
}

func TestNewInventoryRepo_Missing(t *testing.T) {
	_, err := NewInventoryRepo(zaptest.NewLogger(t).Sugar(), filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, domain.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestNewInventoryRepo_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ssh_servers.json", `{"servers": [`)

	_, err := NewInventoryRepo(zaptest.NewLogger(t).Sugar(), path)
	if err == nil || errors.Is(err, domain.ErrConfigNotFound) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestNewCredentialRepo(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ssh_credentials.json", `{
  "default": {"connect_via": "ip_wireguard", "port": 2222, "ssh_key_path": "/k"},
  "server_overrides": {"web1": {"port": 2200}},
  "comment": "ignored"
}`)

	repo, err := NewCredentialRepo(zaptest.NewLogger(t).Sugar(), path)
	if err != nil {
		t.Fatalf("NewCredentialRepo() error = %v", err)
	}
	if !repo.Found() {
		t.Errorf("expected Found() to be true")
	}

	def := repo.Default()
	if def.ConnectVia == nil || *def.ConnectVia != domain.AddressWireguard {
		t.Errorf("default connect_via = %v", def.ConnectVia)
	}
	if def.Port == nil || *def.Port != 2222 {
		t.Errorf("default port = %v", def.Port)
	}

	o, ok := repo.Override("web1")
	if !ok {
		t.Fatalf("expected override for web1")
	}
	if o.Port == nil || *o.Port != 2200 || o.SSHKeyPath != nil || o.ConnectVia != nil {
		t.Errorf("override = %+v, want only port", o)
	}
	if _, ok := repo.Override("db1"); ok {
		t.Errorf("did not expect override for db1")
	}
}

func TestNewCredentialRepo_Missing(t *testing.T) {
	repo, err := NewCredentialRepo(zaptest.NewLogger(t).Sugar(), filepath.Join(t.TempDir(), "ssh_credentials.json"))
	if err != nil {
		t.Fatalf("expected missing credentials to be tolerated, got %v", err)
	}
	if repo.Found() {
		t.Errorf("expected Found() to be false")
	}
	if def := repo.Default(); def.ConnectVia != nil || def.Port != nil || def.SSHKeyPath != nil {
		t.Errorf("expected empty default, got %+v", def)
	}
}

func TestNewCredentialRepo_InvalidConnectVia(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ssh_credentials.json", `{"server_overrides": {"web1": {"connect_via": "hostname"}}}`)

	_, err := NewCredentialRepo(zaptest.NewLogger(t).Sugar(), path)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResolveFromFiles(t *testing.T) {
	inventory := `{"servers": {"web1": {"ip_public": "1.2.3.4", "ip_wireguard": "10.0.0.1", "user": "deploy"}}}`

	tests := []struct {
		name        string
		credentials string
		want        domain.ResolvedConnection
	}{
		{
			name:        "default prefers wireguard",
			credentials: `{"default": {"connect_via": "ip_wireguard", "port": 2222}}`,
			want:        domain.ResolvedConnection{Host: "10.0.0.1", User: "deploy", Port: 2222},
		},
		{
			name:        "override key path only",
			credentials: `{"default": {}, "server_overrides": {"web1": {"ssh_key_path": "/k"}}}`,
			want:        domain.ResolvedConnection{Host: "1.2.3.4", User: "deploy", Port: 22, SSHKeyPath: "/k"},
		},
		{
			name: "no credentials file",
			want: domain.ResolvedConnection{Host: "1.2.3.4", User: "deploy", Port: 22},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			log := zaptest.NewLogger(t).Sugar()

			inv, err := NewInventoryRepo(log, writeFile(t, dir, "ssh_servers.json", inventory))
			if err != nil {
				t.Fatalf("NewInventoryRepo() error = %v", err)
			}
			credsPath := filepath.Join(dir, "ssh_credentials.json")
			if tt.credentials != "" {
				writeFile(t, dir, "ssh_credentials.json", tt.credentials)
			}
			creds, err := NewCredentialRepo(log, credsPath)
			if err != nil {
				t.Fatalf("NewCredentialRepo() error = %v", err)
			}

			got, err := services.NewResolver(log, inv, creds).Resolve("web1")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			got.Server = domain.ServerRecord{}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
