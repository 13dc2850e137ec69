package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-paybyphone/core"
)

const KindGraphQL = "graphql"

// Request metadata keys read by the GraphQL adapter.
const (
	MetadataKeyQuery     = "query"
	MetadataKeyVariables = "variables"
)

// GraphQLAdapter posts query documents to the single consumer GraphQL
// endpoint. The wire envelope always carries an explicit null operationName;
// the remote gateway rejects envelopes without the field.
type GraphQLAdapter struct {
	Endpoint string
	REST     *RESTAdapter
}

func NewGraphQLAdapter(endpoint string, client HTTPDoer) *GraphQLAdapter {
	return &GraphQLAdapter{
		Endpoint: strings.TrimSpace(endpoint),
		REST:     NewRESTAdapter(client),
	}
}

func (*GraphQLAdapter) Kind() string {
	return KindGraphQL
}

func (a *GraphQLAdapter) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil || a.REST == nil {
		return core.TransportResponse{}, transportError(
			"transport: graphql adapter requires a rest adapter",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"adapter": KindGraphQL},
		)
	}

	endpoint := strings.TrimSpace(req.URL)
	if endpoint == "" {
		endpoint = a.Endpoint
	}
	if endpoint == "" {
		return core.TransportResponse{}, transportError(
			"transport: graphql endpoint is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"adapter": KindGraphQL},
		)
	}

	query := readDocument(req)
	if query == "" {
		return core.TransportResponse{}, transportError(
			"transport: graphql query document is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"adapter": KindGraphQL, "endpoint": endpoint},
		)
	}

	envelope := map[string]any{
		"operationName": nil,
		"variables":     readVariables(req.Metadata),
		"query":         query,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: marshal graphql envelope",
			http.StatusBadRequest,
			map[string]any{"adapter": KindGraphQL, "endpoint": endpoint},
		)
	}

	headers := map[string]string{"Content-Type": "application/json"}
	for key, value := range req.Headers {
		headers[key] = value
	}

	response, err := a.REST.Do(ctx, core.TransportRequest{
		Method:   http.MethodPost,
		URL:      endpoint,
		Headers:  headers,
		Body:     body,
		Metadata: req.Metadata,
		Timeout:  req.Timeout,
	})
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: graphql request failed",
			http.StatusBadGateway,
			map[string]any{"adapter": KindGraphQL, "endpoint": endpoint},
		)
	}
	if len(response.Metadata) == 0 {
		response.Metadata = map[string]any{}
	}
	response.Metadata["kind"] = KindGraphQL
	return response, nil
}

func readDocument(req core.TransportRequest) string {
	if req.Metadata != nil {
		if query, ok := req.Metadata[MetadataKeyQuery].(string); ok {
			if trimmed := strings.TrimSpace(query); trimmed != "" {
				return trimmed
			}
		}
	}
	return strings.TrimSpace(string(req.Body))
}

func readVariables(metadata map[string]any) map[string]any {
	if len(metadata) == 0 {
		return map[string]any{}
	}
	typed, ok := metadata[MetadataKeyVariables].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	cloned := make(map[string]any, len(typed))
	for key, value := range typed {
		cloned[key] = value
	}
	return cloned
}

var _ core.TransportAdapter = (*GraphQLAdapter)(nil)
