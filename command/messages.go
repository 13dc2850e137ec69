package command

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-paybyphone/core"
)

const (
	TypeStartParkingSession = "paybyphone.command.parking_session.start"
	TypeVerifyCredentials   = "paybyphone.command.credentials.verify"
)

type StartParkingSessionMessage struct {
	Token            string
	QuoteID          string
	PaymentAccountID string
}

func (StartParkingSessionMessage) Type() string { return TypeStartParkingSession }

func (m StartParkingSessionMessage) Validate() error {
	if strings.TrimSpace(m.Token) == "" {
		return fmt.Errorf("command: access token is required")
	}
	if strings.TrimSpace(m.QuoteID) == "" {
		return fmt.Errorf("command: quote id is required")
	}
	if strings.TrimSpace(m.PaymentAccountID) == "" {
		return fmt.Errorf("command: payment account id is required")
	}
	return nil
}

type VerifyCredentialsMessage struct {
	Credentials core.Credentials
}

func (VerifyCredentialsMessage) Type() string { return TypeVerifyCredentials }

func (m VerifyCredentialsMessage) Validate() error {
	return m.Credentials.Validate()
}
