package core

import (
	"testing"
	"time"
)

func TestDefaultConfig_ProductionSurface(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ClientID != "paybyphone_web" {
		t.Fatalf("unexpected client id: %q", cfg.ClientID)
	}
	if cfg.ClientType != "WebApp" {
		t.Fatalf("unexpected client type: %q", cfg.ClientType)
	}
	if cfg.Origin != "https://m.paybyphone.com" {
		t.Fatalf("unexpected origin: %q", cfg.Origin)
	}
	if cfg.VendorID != "6201" {
		t.Fatalf("unexpected vendor id: %q", cfg.VendorID)
	}
	if cfg.SessionPageLimit != 500 {
		t.Fatalf("unexpected session page limit: %d", cfg.SessionPageLimit)
	}
	if cfg.JobStatusDelay != 5*time.Second {
		t.Fatalf("unexpected job status delay: %v", cfg.JobStatusDelay)
	}
	if cfg.Endpoints.AuthURL != "https://auth.paybyphoneapis.com" {
		t.Fatalf("unexpected auth url: %q", cfg.Endpoints.AuthURL)
	}
	if cfg.Endpoints.GraphQLURL != "https://consumer.paybyphoneapis.com/uapi/graphql" {
		t.Fatalf("unexpected graphql url: %q", cfg.Endpoints.GraphQLURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing client id", func(c *Config) { c.ClientID = " " }},
		{"missing client type", func(c *Config) { c.ClientType = "" }},
		{"zero page limit", func(c *Config) { c.SessionPageLimit = 0 }},
		{"negative delay", func(c *Config) { c.JobStatusDelay = -time.Second }},
		{"missing consumer url", func(c *Config) { c.Endpoints.ConsumerURL = "" }},
		{"non http graphql url", func(c *Config) { c.Endpoints.GraphQLURL = "ftp://example.com" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation failure")
			}
		})
	}
}
