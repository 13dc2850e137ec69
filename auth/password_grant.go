// Package auth implements the password-grant token exchange against the
// PayByPhone authentication endpoint.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-paybyphone/core"
)

type PasswordGrantConfig struct {
	TokenURL   string
	ClientID   string
	ClientType string
	Origin     string
}

func DefaultPasswordGrantConfig() PasswordGrantConfig {
	defaults := core.DefaultConfig()
	return PasswordGrantConfig{
		TokenURL:   defaults.Endpoints.AuthURL + "/token",
		ClientID:   defaults.ClientID,
		ClientType: defaults.ClientType,
		Origin:     defaults.Origin,
	}
}

// PasswordGrantStrategy exchanges a mobile number and password for a bearer
// token. Tokens are returned to the caller and never cached; every workflow
// execution performs a fresh exchange.
type PasswordGrantStrategy struct {
	config    PasswordGrantConfig
	transport core.TransportAdapter
}

func NewPasswordGrantStrategy(cfg PasswordGrantConfig, transport core.TransportAdapter) *PasswordGrantStrategy {
	defaults := DefaultPasswordGrantConfig()
	if strings.TrimSpace(cfg.TokenURL) == "" {
		cfg.TokenURL = defaults.TokenURL
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		cfg.ClientID = defaults.ClientID
	}
	if strings.TrimSpace(cfg.ClientType) == "" {
		cfg.ClientType = defaults.ClientType
	}
	if strings.TrimSpace(cfg.Origin) == "" {
		cfg.Origin = defaults.Origin
	}
	return &PasswordGrantStrategy{
		config: PasswordGrantConfig{
			TokenURL:   strings.TrimSpace(cfg.TokenURL),
			ClientID:   strings.TrimSpace(cfg.ClientID),
			ClientType: strings.TrimSpace(cfg.ClientType),
			Origin:     strings.TrimSpace(cfg.Origin),
		},
		transport: transport,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// GetAccessToken performs the password grant exchange. A transport-level
// success without a usable access_token field is an authentication failure.
func (s *PasswordGrantStrategy) GetAccessToken(ctx context.Context, mobileNumber string, password string) (string, error) {
	if s == nil || s.transport == nil {
		return "", core.NewBadInputError("auth: password grant strategy requires a transport adapter")
	}
	creds := core.Credentials{MobileNumber: mobileNumber, Password: password}
	if err := creds.Validate(); err != nil {
		return "", core.NewBadInputError(err.Error())
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", s.config.ClientID)
	form.Set("username", strings.TrimSpace(mobileNumber))
	form.Set("password", password)

	response, err := s.transport.Do(ctx, core.TransportRequest{
		Method: http.MethodPost,
		URL:    s.config.TokenURL,
		Headers: map[string]string{
			"Content-Type":     "application/x-www-form-urlencoded",
			"origin":           s.config.Origin,
			"x-pbp-clienttype": s.config.ClientType,
		},
		Body: []byte(form.Encode()),
	})
	if err != nil {
		return "", err
	}
	if response.StatusCode >= http.StatusBadRequest {
		return "", core.NewTransportError(
			"auth: token endpoint returned an error status",
			response.StatusCode,
			map[string]any{"url": s.config.TokenURL},
		)
	}

	var token tokenResponse
	if err := json.Unmarshal(response.Body, &token); err != nil {
		return "", core.WrapTransportError(err, "auth: decode token response", map[string]any{"url": s.config.TokenURL})
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return "", core.NewAuthError(core.AuthFailedMessage)
	}
	return token.AccessToken, nil
}

// Verify performs the exchange and discards the token; it backs credential
// test flows that only need an ok/err signal.
func (s *PasswordGrantStrategy) Verify(ctx context.Context, creds core.Credentials) error {
	_, err := s.GetAccessToken(ctx, creds.MobileNumber, creds.Password)
	return err
}
