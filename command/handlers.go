package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-paybyphone/core"
)

type SessionStarter interface {
	StartParkingSession(
		ctx context.Context,
		token string,
		quoteID string,
		paymentAccountID string,
	) (core.JobStatus, error)
}

type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, creds core.Credentials) error
}

type StartParkingSessionCommand struct {
	service SessionStarter
}

func NewStartParkingSessionCommand(service SessionStarter) *StartParkingSessionCommand {
	return &StartParkingSessionCommand{service: service}
}

func (c *StartParkingSessionCommand) Execute(ctx context.Context, msg StartParkingSessionMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: session starter is required")
	}
	if err := msg.Validate(); err != nil {
		return commandWrapValidation(err, "command: start parking session validation failed")
	}
	out, err := c.service.StartParkingSession(ctx, msg.Token, msg.QuoteID, msg.PaymentAccountID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type VerifyCredentialsCommand struct {
	service CredentialVerifier
}

func NewVerifyCredentialsCommand(service CredentialVerifier) *VerifyCredentialsCommand {
	return &VerifyCredentialsCommand{service: service}
}

func (c *VerifyCredentialsCommand) Execute(ctx context.Context, msg VerifyCredentialsMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: credential verifier is required")
	}
	if err := msg.Validate(); err != nil {
		return commandWrapValidation(err, "command: verify credentials validation failed")
	}
	return c.service.VerifyCredentials(ctx, msg.Credentials)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
