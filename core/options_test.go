package core

import (
	"context"
	"testing"
	"time"
)

func TestCfgxConfigProvider_AppliesRawOverDefaults(t *testing.T) {
	provider := NewCfgxConfigProvider(StaticRawConfigLoader{Values: map[string]any{
		"vendor_id": "9999",
		"endpoints": map[string]any{
			"graphql_url": "https://gateway.example.com/graphql",
		},
	}})

	cfg, err := provider.Load(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.VendorID != "9999" {
		t.Fatalf("override lost: %q", cfg.VendorID)
	}
	if cfg.Endpoints.GraphQLURL != "https://gateway.example.com/graphql" {
		t.Fatalf("nested override lost: %q", cfg.Endpoints.GraphQLURL)
	}
	if cfg.ClientID != "paybyphone_web" {
		t.Fatalf("default lost: %q", cfg.ClientID)
	}
}

func TestGoOptionsResolver_PrecedenceOrder(t *testing.T) {
	defaults := DefaultConfig()
	loaded := Config{VendorID: "from-config", SessionPageLimit: 100}
	runtime := Config{VendorID: "from-runtime"}

	resolved, err := GoOptionsResolver{}.Resolve(defaults, loaded, runtime)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if resolved.VendorID != "from-runtime" {
		t.Fatalf("runtime layer should win: %q", resolved.VendorID)
	}
	if resolved.SessionPageLimit != 100 {
		t.Fatalf("config layer should beat defaults: %d", resolved.SessionPageLimit)
	}
	if resolved.JobStatusDelay != 5*time.Second {
		t.Fatalf("unset layers should fall back to defaults: %v", resolved.JobStatusDelay)
	}
	if resolved.Endpoints.ConsumerURL != defaults.Endpoints.ConsumerURL {
		t.Fatalf("default endpoints lost: %q", resolved.Endpoints.ConsumerURL)
	}
}

func TestGoOptionsResolver_RejectsInvalidResult(t *testing.T) {
	runtime := Config{SessionPageLimit: -5}
	if _, err := (GoOptionsResolver{}).Resolve(DefaultConfig(), Config{}, runtime); err == nil {
		t.Fatalf("expected validation failure for negative page limit")
	}
}
