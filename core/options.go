package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	opts "github.com/goliatone/go-options"
)

type ConfigProvider interface {
	Load(ctx context.Context, defaults Config) (Config, error)
}

type RawConfigLoader interface {
	LoadRaw(ctx context.Context) (map[string]any, error)
}

type OptionsResolver interface {
	Resolve(defaults Config, loaded Config, runtime Config) (Config, error)
}

type StaticRawConfigLoader struct {
	Values map[string]any
}

func (l StaticRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	if len(l.Values) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(l.Values))
	for key, value := range l.Values {
		out[key] = value
	}
	return out, nil
}

type CfgxConfigProvider struct {
	Loader RawConfigLoader
}

func NewCfgxConfigProvider(loader RawConfigLoader) *CfgxConfigProvider {
	return &CfgxConfigProvider{Loader: loader}
}

func (p *CfgxConfigProvider) Load(ctx context.Context, defaults Config) (Config, error) {
	if p == nil {
		return defaults, nil
	}
	loader := p.Loader
	if loader == nil {
		loader = StaticRawConfigLoader{}
	}
	raw, err := loader.LoadRaw(ctx)
	if err != nil {
		return Config{}, err
	}
	cfg, err := cfgx.Build[Config](raw,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GoOptionsResolver merges defaults, loaded config, and runtime overrides in
// deterministic precedence order: defaults < config < runtime.
type GoOptionsResolver struct{}

func (GoOptionsResolver) Resolve(defaults Config, loaded Config, runtime Config) (Config, error) {
	defaultLayer := configToLayerMap(defaults, true)
	loadedLayer := configToLayerMap(loaded, false)
	runtimeLayer := configToLayerMap(runtime, false)

	stack, err := opts.NewStack(
		opts.NewLayer(
			opts.NewScope("defaults", 0),
			defaultLayer,
			opts.WithSnapshotID[map[string]any]("defaults"),
		),
		opts.NewLayer(
			opts.NewScope("config", 10),
			loadedLayer,
			opts.WithSnapshotID[map[string]any]("config"),
		),
		opts.NewLayer(
			opts.NewScope("runtime", 20),
			runtimeLayer,
			opts.WithSnapshotID[map[string]any]("runtime"),
		),
	)
	if err != nil {
		return Config{}, fmt.Errorf("core: options stack build failed: %w", err)
	}
	merged, err := stack.Merge()
	if err != nil {
		return Config{}, fmt.Errorf("core: options merge failed: %w", err)
	}
	resolved, err := cfgx.Build[Config](merged.Value,
		cfgx.WithDefaults(defaults),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}
	return resolved, nil
}

func configToLayerMap(cfg Config, includeZero bool) map[string]any {
	layer := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.ClientID) != "" {
		layer["client_id"] = cfg.ClientID
	}
	if includeZero || strings.TrimSpace(cfg.ClientType) != "" {
		layer["client_type"] = cfg.ClientType
	}
	if includeZero || strings.TrimSpace(cfg.Origin) != "" {
		layer["origin"] = cfg.Origin
	}
	if includeZero || strings.TrimSpace(cfg.PaymentsAPIKey) != "" {
		layer["payments_api_key"] = cfg.PaymentsAPIKey
	}
	if includeZero || strings.TrimSpace(cfg.VendorID) != "" {
		layer["vendor_id"] = cfg.VendorID
	}
	if includeZero || cfg.SessionPageLimit != 0 {
		layer["session_page_limit"] = cfg.SessionPageLimit
	}
	if includeZero || cfg.JobStatusDelay != 0 {
		layer["job_status_delay"] = cfg.JobStatusDelay
	}

	endpoints := map[string]any{}
	if includeZero || strings.TrimSpace(cfg.Endpoints.AuthURL) != "" {
		endpoints["auth_url"] = cfg.Endpoints.AuthURL
	}
	if includeZero || strings.TrimSpace(cfg.Endpoints.ConsumerURL) != "" {
		endpoints["consumer_url"] = cfg.Endpoints.ConsumerURL
	}
	if includeZero || strings.TrimSpace(cfg.Endpoints.PaymentsURL) != "" {
		endpoints["payments_url"] = cfg.Endpoints.PaymentsURL
	}
	if includeZero || strings.TrimSpace(cfg.Endpoints.GraphQLURL) != "" {
		endpoints["graphql_url"] = cfg.Endpoints.GraphQLURL
	}
	if len(endpoints) > 0 {
		layer["endpoints"] = endpoints
	}
	return layer
}
