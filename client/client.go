// Package client is the authenticated PayByPhone API surface: token
// acquisition, resource fetchers, quotes, and the start-session workflow.
// Every invocation is a fresh, single-shot call chain; nothing is cached or
// persisted between calls.
package client

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-paybyphone/auth"
	"github.com/goliatone/go-paybyphone/core"
	"github.com/goliatone/go-paybyphone/session"
	"github.com/goliatone/go-paybyphone/transport"
)

type Client struct {
	config       core.Config
	rest         core.TransportAdapter
	gql          core.TransportAdapter
	auth         *auth.PasswordGrantStrategy
	orchestrator *session.Orchestrator
	logger       core.Logger
	metrics      core.MetricsRecorder
	ids          core.IDGenerator
}

// New resolves configuration through the layered provider stack
// (defaults < loaded < runtime) and wires the transports, auth strategy, and
// session orchestrator.
func New(runtime core.Config, opts ...Option) (*Client, error) {
	builder := defaultClientBuilder(runtime)
	for _, opt := range opts {
		opt(&builder)
	}

	loaded, err := builder.configProvider.Load(context.Background(), core.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("client: load config: %w", err)
	}
	resolved, err := builder.optionsResolver.Resolve(core.DefaultConfig(), loaded, builder.runtimeConfig)
	if err != nil {
		return nil, fmt.Errorf("client: resolve config: %w", err)
	}

	registry := builder.registry
	if registry == nil {
		registry = transport.NewDefaultRegistry(resolved.Endpoints.GraphQLURL, builder.httpClient)
	}
	rest, ok := registry.Get(transport.KindREST)
	if !ok {
		return nil, fmt.Errorf("client: transport registry has no %q adapter", transport.KindREST)
	}
	gql, ok := registry.Get(transport.KindGraphQL)
	if !ok {
		return nil, fmt.Errorf("client: transport registry has no %q adapter", transport.KindGraphQL)
	}

	_, logger := glog.Resolve("paybyphone", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)

	strategy := auth.NewPasswordGrantStrategy(auth.PasswordGrantConfig{
		TokenURL:   strings.TrimRight(resolved.Endpoints.AuthURL, "/") + "/token",
		ClientID:   resolved.ClientID,
		ClientType: resolved.ClientType,
		Origin:     resolved.Origin,
	}, rest)

	client := &Client{
		config:  resolved,
		rest:    rest,
		gql:     gql,
		auth:    strategy,
		logger:  logger,
		metrics: builder.metricsRecorder,
		ids:     builder.ids,
	}
	client.orchestrator = session.NewOrchestrator(client, session.Config{
		VendorID:       resolved.VendorID,
		JobStatusDelay: resolved.JobStatusDelay,
	},
		session.WithSleeper(builder.sleeper),
		session.WithLogger(logger),
		session.WithMetricsRecorder(builder.metricsRecorder),
	)
	return client, nil
}

func (c *Client) Config() core.Config {
	if c == nil {
		return core.Config{}
	}
	return c.config
}

// GetAccessToken exchanges credentials for a bearer token. The token is
// owned by the caller for the duration of one workflow execution.
func (c *Client) GetAccessToken(ctx context.Context, mobileNumber string, password string) (string, error) {
	if c == nil || c.auth == nil {
		return "", core.NewBadInputError("client: auth strategy is not configured")
	}
	return c.auth.GetAccessToken(ctx, mobileNumber, password)
}

// VerifyCredentials performs the token exchange and discards the token.
func (c *Client) VerifyCredentials(ctx context.Context, creds core.Credentials) error {
	if c == nil || c.auth == nil {
		return core.NewBadInputError("client: auth strategy is not configured")
	}
	return c.auth.Verify(ctx, creds)
}

// StartParkingSession runs the three-step start workflow for an accepted
// quote. See the session package for the partial-failure contract.
func (c *Client) StartParkingSession(
	ctx context.Context,
	token string,
	quoteID string,
	paymentAccountID string,
) (core.JobStatus, error) {
	if c == nil || c.orchestrator == nil {
		return core.JobStatus{}, core.NewBadInputError("client: session orchestrator is not configured")
	}
	return c.orchestrator.StartParkingSession(ctx, token, quoteID, paymentAccountID)
}

var _ session.GraphQLExecutor = (*Client)(nil)
