package core

import (
	"fmt"
	"strings"
	"time"
)

type EndpointsConfig struct {
	AuthURL     string `koanf:"auth_url" mapstructure:"auth_url"`
	ConsumerURL string `koanf:"consumer_url" mapstructure:"consumer_url"`
	PaymentsURL string `koanf:"payments_url" mapstructure:"payments_url"`
	GraphQLURL  string `koanf:"graphql_url" mapstructure:"graphql_url"`
}

type Config struct {
	ClientID         string          `koanf:"client_id" mapstructure:"client_id"`
	ClientType       string          `koanf:"client_type" mapstructure:"client_type"`
	Origin           string          `koanf:"origin" mapstructure:"origin"`
	PaymentsAPIKey   string          `koanf:"payments_api_key" mapstructure:"payments_api_key"`
	VendorID         string          `koanf:"vendor_id" mapstructure:"vendor_id"`
	SessionPageLimit int             `koanf:"session_page_limit" mapstructure:"session_page_limit"`
	JobStatusDelay   time.Duration   `koanf:"job_status_delay" mapstructure:"job_status_delay"`
	Endpoints        EndpointsConfig `koanf:"endpoints" mapstructure:"endpoints"`
}

// DefaultConfig carries the production PayByPhone surface. The delay before
// the job status poll is the processing latency the remote system needs
// before it can answer, not a backoff knob.
func DefaultConfig() Config {
	return Config{
		ClientID:         "paybyphone_web",
		ClientType:       "WebApp",
		Origin:           "https://m.paybyphone.com",
		PaymentsAPIKey:   "HS22UMHFDZHhzso3WRCXsYodkAD6PhcB",
		VendorID:         "6201",
		SessionPageLimit: 500,
		JobStatusDelay:   5 * time.Second,
		Endpoints: EndpointsConfig{
			AuthURL:     "https://auth.paybyphoneapis.com",
			ConsumerURL: "https://consumer.paybyphoneapis.com",
			PaymentsURL: "https://payments.paybyphoneapis.com",
			GraphQLURL:  "https://consumer.paybyphoneapis.com/uapi/graphql",
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("core: client_id is required")
	}
	if strings.TrimSpace(c.ClientType) == "" {
		return fmt.Errorf("core: client_type is required")
	}
	if c.SessionPageLimit <= 0 {
		return fmt.Errorf("core: session_page_limit must be positive")
	}
	if c.JobStatusDelay < 0 {
		return fmt.Errorf("core: job_status_delay must not be negative")
	}
	for name, value := range map[string]string{
		"endpoints.auth_url":     c.Endpoints.AuthURL,
		"endpoints.consumer_url": c.Endpoints.ConsumerURL,
		"endpoints.payments_url": c.Endpoints.PaymentsURL,
		"endpoints.graphql_url":  c.Endpoints.GraphQLURL,
	} {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return fmt.Errorf("core: %s is required", name)
		}
		if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
			return fmt.Errorf("core: %s must be an http(s) url", name)
		}
	}
	return nil
}
