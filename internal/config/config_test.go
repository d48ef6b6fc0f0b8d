package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid STORAGE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_WebhookRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEBHOOK_ENABLED", "true")
	t.Setenv("WEBHOOK_ENDPOINT_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WEBHOOK_ENABLED=true without WEBHOOK_ENDPOINT_URL")
	}
}

func TestLoad_WebhookRequiresSigningTokenWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEBHOOK_ENABLED", "true")
	t.Setenv("WEBHOOK_ENDPOINT_URL", "https://hooks.example.com/club-events")
	t.Setenv("WEBHOOK_SIGNING_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WEBHOOK_ENABLED=true without WEBHOOK_SIGNING_TOKEN")
	}
}

func TestLoad_MemberAuthConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("MEMBER_AUTH_BASE_URL", "https://accounts.example.com")
	t.Setenv("MEMBER_AUTH_INTROSPECT_PATH", "/v2/introspect")
	t.Setenv("MEMBER_AUTH_ADMIN_KEY", "admin-key-123")
	t.Setenv("MEMBER_AUTH_TIMEOUT", "4s")
	t.Setenv("MEMBER_AUTH_CACHE_TTL", "45s")
	t.Setenv("MEMBER_AUTH_CIRCUIT_FAILURE_COUNT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MemberAuthBaseURL != "https://accounts.example.com" {
		t.Fatalf("unexpected MemberAuthBaseURL: %q", cfg.MemberAuthBaseURL)
	}
	if cfg.MemberAuthIntrospectPath != "/v2/introspect" {
		t.Fatalf("unexpected MemberAuthIntrospectPath: %q", cfg.MemberAuthIntrospectPath)
	}
	if cfg.MemberAuthAdminKey != "admin-key-123" {
		t.Fatalf("unexpected MemberAuthAdminKey")
	}
	if cfg.MemberAuthTimeout != 4*time.Second {
		t.Fatalf("unexpected MemberAuthTimeout: %s", cfg.MemberAuthTimeout)
	}
	if cfg.MemberAuthCacheTTL != 45*time.Second {
		t.Fatalf("unexpected MemberAuthCacheTTL: %s", cfg.MemberAuthCacheTTL)
	}
	if cfg.MemberAuthCircuitFailureCount != 7 {
		t.Fatalf("unexpected MemberAuthCircuitFailureCount: %d", cfg.MemberAuthCircuitFailureCount)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected default StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default HTTPAddr: %q", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=true by default")
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected default CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.ImportMaxWorkers != 4 {
		t.Fatalf("unexpected default ImportMaxWorkers: %d", cfg.ImportMaxWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected default CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_CORSCannotBeEmpty(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty CORS_ALLOWED_ORIGINS")
	}
}

func TestLoad_ImportMaxWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("IMPORT_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for IMPORT_MAX_WORKERS=0")
	}
}
