package client

import (
	"context"
	"strings"

	"github.com/goliatone/go-paybyphone/core"
	"github.com/goliatone/go-paybyphone/normalize"
	"github.com/goliatone/go-paybyphone/transport"
	"github.com/tidwall/gjson"
)

const (
	headerAuthorization = "Authorization"
	headerClientType    = "x-pbp-clienttype"
	headerWorkflowID    = "x-pbp-workflowid"
	headerAPIKey        = "x-api-key"
)

// ExecuteGraphQL posts one catalog document with the bearer token attached.
// A well-formed server error list is folded into a single GraphQL error;
// other HTTP failures surface as transport errors with the status preserved.
func (c *Client) ExecuteGraphQL(
	ctx context.Context,
	token string,
	document string,
	variables map[string]any,
	workflowID string,
) ([]byte, error) {
	if c == nil || c.gql == nil {
		return nil, core.NewBadInputError("client: graphql transport is not configured")
	}
	if strings.TrimSpace(document) == "" {
		return nil, core.NewBadInputError("client: graphql document is required")
	}

	headers := map[string]string{
		headerAuthorization: "Bearer " + strings.TrimSpace(token),
		headerClientType:    c.config.ClientType,
	}
	if trimmed := strings.TrimSpace(workflowID); trimmed != "" {
		headers[headerWorkflowID] = trimmed
	}

	response, err := c.gql.Do(ctx, core.TransportRequest{
		URL:     c.config.Endpoints.GraphQLURL,
		Headers: headers,
		Metadata: map[string]any{
			transport.MetadataKeyQuery:     document,
			transport.MetadataKeyVariables: variables,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := translateGraphQLErrors(response.Body); err != nil {
		return nil, err
	}
	if response.StatusCode >= 400 {
		return nil, core.NewTransportError(
			"client: graphql endpoint returned an error status",
			response.StatusCode,
			map[string]any{"body": excerpt(response.Body)},
		)
	}
	return response.Body, nil
}

// extractNormalized plucks a response subtree by path and strips the
// introspection metadata before returning the decoded tree.
func extractNormalized(body []byte, path string) (any, error) {
	node := gjson.GetBytes(body, path)
	if !node.Exists() {
		return nil, core.NewTransportError(
			"client: response is missing the expected payload",
			0,
			map[string]any{"path": path},
		)
	}
	normalized, err := normalize.StripJSON([]byte(node.Raw))
	if err != nil {
		return nil, core.WrapTransportError(err, "client: decode graphql payload", map[string]any{"path": path})
	}
	return normalized, nil
}

// translateGraphQLErrors folds `{"errors": [{"message": ...}, ...]}` shaped
// bodies into one error with the messages semicolon-joined. Bodies carrying
// the list under a response/data envelope are handled the same way.
func translateGraphQLErrors(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	for _, path := range []string{"errors", "response.data.errors", "data.errors"} {
		list := gjson.GetBytes(body, path)
		if !list.IsArray() {
			continue
		}
		messages := make([]string, 0, 4)
		list.ForEach(func(_ gjson.Result, item gjson.Result) bool {
			if message := strings.TrimSpace(item.Get("message").String()); message != "" {
				messages = append(messages, message)
			}
			return true
		})
		if len(messages) > 0 {
			return core.NewGraphQLError(messages)
		}
	}
	return nil
}

func excerpt(body []byte) string {
	const limit = 512
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}

func toObjectList(node any) []map[string]any {
	list, ok := node.([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if object, ok := item.(map[string]any); ok {
			out = append(out, object)
		}
	}
	return out
}
