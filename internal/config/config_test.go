package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerAddr != "0.0.0.0" {
		t.Errorf("ServerAddr = %q, want 0.0.0.0", cfg.ServerAddr)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want localhost", cfg.DBHost)
	}
	if cfg.SessionTTL != 30*24*time.Hour {
		t.Errorf("SessionTTL = %v, want 720h", cfg.SessionTTL)
	}
	if cfg.SweepInterval != time.Hour {
		t.Errorf("SweepInterval = %v, want 1h", cfg.SweepInterval)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure = true, want false")
	}
	if cfg.TrustTenantHeader {
		t.Error("TrustTenantHeader = true, want false")
	}
	if cfg.TenantUnresolvedPolicy != "reject" {
		t.Errorf("TenantUnresolvedPolicy = %q, want reject", cfg.TenantUnresolvedPolicy)
	}
	if len(cfg.LoopbackHosts) != 2 || cfg.LoopbackHosts[0] != "localhost" {
		t.Errorf("LoopbackHosts = %v, want [localhost 127.0.0.1]", cfg.LoopbackHosts)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("LOOPBACK_HOSTS", "localhost, dev.local")
	t.Setenv("TRUST_TENANT_HEADER", "true")
	t.Setenv("TENANT_UNRESOLVED_POLICY", "not_found")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want 9090", cfg.ServerPort)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if len(cfg.LoopbackHosts) != 2 || cfg.LoopbackHosts[1] != "dev.local" {
		t.Errorf("LoopbackHosts = %v, want [localhost dev.local]", cfg.LoopbackHosts)
	}
	if !cfg.TrustTenantHeader {
		t.Error("TrustTenantHeader = false, want true")
	}
	if cfg.TenantUnresolvedPolicy != "not_found" {
		t.Errorf("TenantUnresolvedPolicy = %q, want not_found", cfg.TenantUnresolvedPolicy)
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("TENANT_UNRESOLVED_POLICY", "teapot")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unknown TENANT_UNRESOLVED_POLICY")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("COOKIE_SECURE", "sure")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want default 8080", cfg.ServerPort)
	}
	if cfg.SessionTTL != 30*24*time.Hour {
		t.Errorf("SessionTTL = %v, want default 720h", cfg.SessionTTL)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure = true, want default false")
	}
}
