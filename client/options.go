package client

import (
	"github.com/goliatone/go-paybyphone/core"
	"github.com/goliatone/go-paybyphone/transport"
)

type clientBuilder struct {
	runtimeConfig   core.Config
	logger          core.Logger
	loggerProvider  core.LoggerProvider
	metricsRecorder core.MetricsRecorder
	configProvider  core.ConfigProvider
	optionsResolver core.OptionsResolver
	registry        *transport.Registry
	httpClient      transport.HTTPDoer
	ids             core.IDGenerator
	sleeper         core.Sleeper
}

type Option func(*clientBuilder)

func defaultClientBuilder(runtime core.Config) clientBuilder {
	return clientBuilder{
		runtimeConfig:   runtime,
		metricsRecorder: core.NopMetricsRecorder{},
		configProvider:  core.NewCfgxConfigProvider(nil),
		optionsResolver: core.GoOptionsResolver{},
		ids:             core.UUIDGenerator{},
	}
}

func WithLogger(logger core.Logger) Option {
	return func(b *clientBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *clientBuilder) {
		b.loggerProvider = provider
	}
}

func WithMetricsRecorder(recorder core.MetricsRecorder) Option {
	return func(b *clientBuilder) {
		if recorder != nil {
			b.metricsRecorder = recorder
		}
	}
}

func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *clientBuilder) {
		if provider != nil {
			b.configProvider = provider
		}
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *clientBuilder) {
		if resolver != nil {
			b.optionsResolver = resolver
		}
	}
}

// WithTransportRegistry replaces the default adapter registry; the registry
// must resolve both the rest and graphql kinds.
func WithTransportRegistry(registry *transport.Registry) Option {
	return func(b *clientBuilder) {
		b.registry = registry
	}
}

// WithHTTPClient sets the HTTP client backing the default adapters. Ignored
// when a registry is supplied.
func WithHTTPClient(client transport.HTTPDoer) Option {
	return func(b *clientBuilder) {
		b.httpClient = client
	}
}

// WithIDGenerator replaces the correlation-id source. The generator must
// yield unique RFC-4122 shaped values per call.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(b *clientBuilder) {
		if ids != nil {
			b.ids = ids
		}
	}
}

// WithSleeper replaces the delay primitive used before the job status poll.
func WithSleeper(sleeper core.Sleeper) Option {
	return func(b *clientBuilder) {
		b.sleeper = sleeper
	}
}
