package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-paybyphone/core"
	"github.com/goliatone/go-paybyphone/graphql"
	"github.com/goliatone/go-paybyphone/normalize"
)

// GetLocations fetches inventory locations filtered server-side by the
// advertised location number.
func (c *Client) GetLocations(ctx context.Context, token string, advertisedLocationNumber string) ([]core.Location, error) {
	startedAt := time.Now().UTC()
	advertisedLocationNumber = strings.TrimSpace(advertisedLocationNumber)
	if advertisedLocationNumber == "" {
		return nil, core.NewBadInputError("client: advertised location number is required")
	}

	body, err := c.restGET(ctx, token, c.config.Endpoints.ConsumerURL+"/v2/inventory/locations",
		map[string]string{"advertisedLocationNumber": advertisedLocationNumber}, nil)
	fields := map[string]any{"location_id": advertisedLocationNumber}
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "locations.list", err, fields)
		return nil, err
	}

	var locations []core.Location
	if err := decodeBody(body, &locations); err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "locations.list", err, fields)
		return nil, err
	}
	core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "locations.list", nil, fields)
	return locations, nil
}

// GetVehicles returns the full vehicle list including archived entries;
// filtering archived vehicles is the caller's responsibility.
func (c *Client) GetVehicles(ctx context.Context, token string) ([]core.Vehicle, error) {
	startedAt := time.Now().UTC()
	body, err := c.restGET(ctx, token,
		c.config.Endpoints.ConsumerURL+"/identity/profileservice/v3/members/vehicles/paybyphone", nil, nil)
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "vehicles.list", err, nil)
		return nil, err
	}

	var vehicles []core.Vehicle
	if err := decodeBody(body, &vehicles); err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "vehicles.list", err, nil)
		return nil, err
	}
	core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "vehicles.list", nil, nil)
	return vehicles, nil
}

// GetPaymentMethods lists payment accounts. The payments surface sits behind
// a separate trust boundary and requires the fixed API key on top of the
// bearer token.
func (c *Client) GetPaymentMethods(ctx context.Context, token string) (core.PaymentMethods, error) {
	startedAt := time.Now().UTC()
	body, err := c.restGET(ctx, token, c.config.Endpoints.PaymentsURL+"/v1/accounts", nil,
		map[string]string{headerAPIKey: c.config.PaymentsAPIKey})
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "payment_methods.list", err, nil)
		return core.PaymentMethods{}, err
	}

	var methods core.PaymentMethods
	if err := decodeBody(body, &methods); err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "payment_methods.list", err, nil)
		return core.PaymentMethods{}, err
	}
	core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "payment_methods.list", nil, nil)
	return methods, nil
}

// GetParkingSessions returns the normalized session list for one period.
// Pagination is fixed; callers needing both periods issue two calls.
func (c *Client) GetParkingSessions(ctx context.Context, token string, period core.PeriodType) ([]map[string]any, error) {
	startedAt := time.Now().UTC()
	if err := period.Validate(); err != nil {
		return nil, core.NewBadInputError(err.Error())
	}

	fields := map[string]any{"period_type": string(period)}
	body, err := c.ExecuteGraphQL(ctx, token, graphql.GetParkingSessions, map[string]any{
		"input": map[string]any{
			"periodType": string(period),
			"offset":     0,
			"limit":      c.config.SessionPageLimit,
		},
	}, "")
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "parking_sessions.list", err, fields)
		return nil, err
	}

	normalized, err := extractNormalized(body, "data.getParkingSessionsV1")
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "parking_sessions.list", err, fields)
		return nil, err
	}
	core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "parking_sessions.list", nil, fields)
	return toObjectList(normalized), nil
}

// GetRate returns the normalized rate options for a location and plate.
func (c *Client) GetRate(ctx context.Context, token string, locationID string, licensePlate string) ([]core.RateOption, error) {
	startedAt := time.Now().UTC()
	locationID = strings.TrimSpace(locationID)
	licensePlate = strings.TrimSpace(licensePlate)
	if locationID == "" {
		return nil, core.NewBadInputError("client: location id is required")
	}
	if licensePlate == "" {
		return nil, core.NewBadInputError("client: license plate is required")
	}

	fields := map[string]any{"location_id": locationID}
	body, err := c.ExecuteGraphQL(ctx, token, graphql.GetRateOptions, map[string]any{
		"input": map[string]any{
			"locationId":   locationID,
			"licensePlate": licensePlate,
		},
	}, "")
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "rates.get", err, fields)
		return nil, err
	}

	normalized, err := extractNormalized(body, "data.getRateOptionsV1")
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "rates.get", err, fields)
		return nil, err
	}
	core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "rates.get", nil, fields)
	return toObjectList(normalized), nil
}

// GetQuote requests a single-element quote batch. Every call generates a
// fresh correlation id; the remote system uses it for idempotency, so a
// collision is a correctness bug rather than a cosmetic one.
func (c *Client) GetQuote(ctx context.Context, token string, req core.QuoteRequest) (core.QuoteResponse, error) {
	startedAt := time.Now().UTC()
	if err := req.Validate(); err != nil {
		return core.QuoteResponse{}, core.NewBadInputError(err.Error())
	}

	quoteRequestID := c.ids.NewID()
	fields := map[string]any{
		"location_id":      req.LocationID,
		"quote_request_id": quoteRequestID,
	}
	body, err := c.ExecuteGraphQL(ctx, token, graphql.CreateQuotes, map[string]any{
		"requests": []any{
			map[string]any{
				"quoteRequestId": quoteRequestID,
				"product":        "PARKING",
				"details": map[string]any{
					"locationId":            req.LocationID,
					"advertisedLocationId":  req.LocationID,
					"ratePolicyId":          req.RatePolicyID,
					"parkingQuoteOperation": "Start",
					"durationTimeUnit":      req.DurationTimeUnit,
					"durationQuantity":      strconv.Itoa(req.Duration),
					"licensePlate":          req.LicensePlate,
					"paymentAccountId":      "",
					"paymentCardType":       "",
					"paymentScope":          "",
				},
			},
		},
	}, "")
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "quotes.create", err, fields)
		return core.QuoteResponse{}, err
	}

	normalized, err := extractNormalized(body, "data.createQuotesV1.createQuotesResponse")
	if err != nil {
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "quotes.create", err, fields)
		return core.QuoteResponse{}, err
	}
	var quote core.QuoteResponse
	if err := normalize.DecodeInto(normalized, &quote); err != nil {
		wrapped := core.WrapTransportError(err, "client: decode quote response", nil)
		core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "quotes.create", wrapped, fields)
		return core.QuoteResponse{}, wrapped
	}
	core.ObserveOperation(ctx, c.logger, c.metrics, startedAt, "quotes.create", nil, fields)
	return quote, nil
}

func (c *Client) restGET(
	ctx context.Context,
	token string,
	url string,
	query map[string]string,
	extraHeaders map[string]string,
) ([]byte, error) {
	if c == nil || c.rest == nil {
		return nil, core.NewBadInputError("client: rest transport is not configured")
	}
	headers := map[string]string{
		headerAuthorization: "Bearer " + strings.TrimSpace(token),
		headerClientType:    c.config.ClientType,
	}
	for key, value := range extraHeaders {
		headers[key] = value
	}

	response, err := c.rest.Do(ctx, core.TransportRequest{
		Method:  http.MethodGet,
		URL:     url,
		Headers: headers,
		Query:   query,
	})
	if err != nil {
		return nil, err
	}
	if response.StatusCode >= http.StatusBadRequest {
		return nil, core.NewTransportError(
			"client: endpoint returned an error status",
			response.StatusCode,
			map[string]any{"url": url, "body": excerpt(response.Body)},
		)
	}
	return response.Body, nil
}

func decodeBody(body []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return core.WrapTransportError(err, "client: decode response body", nil)
	}
	return nil
}
