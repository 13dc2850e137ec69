package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorCodeBadInput        = "PBP_BAD_INPUT"
	ErrorCodeAuthFailed      = "PBP_AUTH_FAILED"
	ErrorCodeGraphQL         = "PBP_GRAPHQL_ERROR"
	ErrorCodeTransport       = "PBP_TRANSPORT_FAILURE"
	ErrorCodeWorkflowPartial = "PBP_WORKFLOW_PARTIAL_FAILURE"
	ErrorCodeInternal        = "PBP_INTERNAL_ERROR"
)

// AuthFailedMessage mirrors the remote contract: the token exchange can
// succeed at the transport layer and still return no usable token.
const AuthFailedMessage = "Failed to obtain access token from PayByPhone"

func NewAuthError(message string) error {
	if strings.TrimSpace(message) == "" {
		message = AuthFailedMessage
	}
	return goerrors.New(message, goerrors.CategoryAuth).
		WithCode(http.StatusUnauthorized).
		WithTextCode(ErrorCodeAuthFailed)
}

// NewGraphQLError folds a server error list into a single error whose message
// is the semicolon-joined concatenation of the individual messages.
func NewGraphQLError(messages []string) error {
	cleaned := make([]string, 0, len(messages))
	for _, message := range messages {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return goerrors.New("GraphQL Error: "+strings.Join(cleaned, "; "), goerrors.CategoryOperation).
		WithCode(http.StatusUnprocessableEntity).
		WithTextCode(ErrorCodeGraphQL)
}

func NewTransportError(message string, statusCode int, metadata map[string]any) error {
	err := goerrors.New(message, goerrors.CategoryExternal).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorCodeTransport)
	fields := cloneErrorMetadata(metadata)
	if statusCode > 0 {
		fields["status_code"] = statusCode
	}
	if len(fields) > 0 {
		err.WithMetadata(fields)
	}
	return err
}

func WrapTransportError(source error, message string, metadata map[string]any) error {
	if source == nil {
		return nil
	}
	err := goerrors.Wrap(source, goerrors.CategoryExternal, message).
		WithCode(http.StatusBadGateway).
		WithTextCode(ErrorCodeTransport)
	if len(metadata) > 0 {
		err.WithMetadata(cloneErrorMetadata(metadata))
	}
	return err
}

// WrapWorkflowError tags a start-session failure that happened after the
// session side effect already committed remotely. There is no compensating
// action; the metadata lets callers see which step broke and which session
// may have been orphaned.
func WrapWorkflowError(source error, sessionID string, step string) error {
	if source == nil {
		return nil
	}
	return goerrors.Wrap(source, goerrors.CategoryOperation, "session workflow failed after session creation").
		WithCode(http.StatusConflict).
		WithTextCode(ErrorCodeWorkflowPartial).
		WithMetadata(map[string]any{
			"parking_session_id": strings.TrimSpace(sessionID),
			"workflow_step":      strings.TrimSpace(step),
		})
}

func NewBadInputError(message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorCodeBadInput)
}

// IsGraphQLError reports whether err carries the GraphQL error text code at
// any depth.
func IsGraphQLError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == ErrorCodeGraphQL
}

func cloneErrorMetadata(metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata)+1)
	for key, value := range metadata {
		out[key] = value
	}
	return out
}
