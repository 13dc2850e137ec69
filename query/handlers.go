package query

import (
	"context"

	"github.com/goliatone/go-paybyphone/core"
)

type ResourceReader interface {
	GetVehicles(ctx context.Context, token string) ([]core.Vehicle, error)
	GetLocations(ctx context.Context, token string, advertisedLocationNumber string) ([]core.Location, error)
	GetPaymentMethods(ctx context.Context, token string) (core.PaymentMethods, error)
	GetParkingSessions(ctx context.Context, token string, period core.PeriodType) ([]map[string]any, error)
	GetRate(ctx context.Context, token string, locationID string, licensePlate string) ([]core.RateOption, error)
	GetQuote(ctx context.Context, token string, req core.QuoteRequest) (core.QuoteResponse, error)
}

type ListVehiclesQuery struct {
	reader ResourceReader
}

func NewListVehiclesQuery(reader ResourceReader) *ListVehiclesQuery {
	return &ListVehiclesQuery{reader: reader}
}

func (q *ListVehiclesQuery) Query(ctx context.Context, msg ListVehiclesMessage) ([]core.Vehicle, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: resource reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, queryWrapValidation(err, "query: list vehicles validation failed")
	}
	vehicles, err := q.reader.GetVehicles(ctx, msg.Token)
	if err != nil {
		return nil, err
	}
	if msg.IncludeArchived {
		return vehicles, nil
	}
	active := make([]core.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if vehicle.Archived {
			continue
		}
		active = append(active, vehicle)
	}
	return active, nil
}

type ListLocationsQuery struct {
	reader ResourceReader
}

func NewListLocationsQuery(reader ResourceReader) *ListLocationsQuery {
	return &ListLocationsQuery{reader: reader}
}

func (q *ListLocationsQuery) Query(ctx context.Context, msg ListLocationsMessage) ([]core.Location, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: resource reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, queryWrapValidation(err, "query: list locations validation failed")
	}
	return q.reader.GetLocations(ctx, msg.Token, msg.AdvertisedLocationNumber)
}

type ListPaymentMethodsQuery struct {
	reader ResourceReader
}

func NewListPaymentMethodsQuery(reader ResourceReader) *ListPaymentMethodsQuery {
	return &ListPaymentMethodsQuery{reader: reader}
}

func (q *ListPaymentMethodsQuery) Query(
	ctx context.Context,
	msg ListPaymentMethodsMessage,
) (core.PaymentMethods, error) {
	if q == nil || q.reader == nil {
		return core.PaymentMethods{}, queryDependencyError("query: resource reader is required")
	}
	if err := msg.Validate(); err != nil {
		return core.PaymentMethods{}, queryWrapValidation(err, "query: list payment methods validation failed")
	}
	return q.reader.GetPaymentMethods(ctx, msg.Token)
}

type ListParkingSessionsQuery struct {
	reader ResourceReader
}

func NewListParkingSessionsQuery(reader ResourceReader) *ListParkingSessionsQuery {
	return &ListParkingSessionsQuery{reader: reader}
}

func (q *ListParkingSessionsQuery) Query(
	ctx context.Context,
	msg ListParkingSessionsMessage,
) ([]map[string]any, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: resource reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, queryWrapValidation(err, "query: list parking sessions validation failed")
	}
	sessions, err := q.reader.GetParkingSessions(ctx, msg.Token, core.PeriodTypeCurrent)
	if err != nil {
		return nil, err
	}
	if !msg.IncludePast {
		return sessions, nil
	}
	past, err := q.reader.GetParkingSessions(ctx, msg.Token, core.PeriodTypeHistoric)
	if err != nil {
		return nil, err
	}
	return append(sessions, past...), nil
}

type GetRateQuery struct {
	reader ResourceReader
}

func NewGetRateQuery(reader ResourceReader) *GetRateQuery {
	return &GetRateQuery{reader: reader}
}

func (q *GetRateQuery) Query(ctx context.Context, msg GetRateMessage) ([]core.RateOption, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: resource reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, queryWrapValidation(err, "query: get rate validation failed")
	}
	return q.reader.GetRate(ctx, msg.Token, msg.LocationID, msg.LicensePlate)
}

type GetQuoteQuery struct {
	reader ResourceReader
}

func NewGetQuoteQuery(reader ResourceReader) *GetQuoteQuery {
	return &GetQuoteQuery{reader: reader}
}

func (q *GetQuoteQuery) Query(ctx context.Context, msg GetQuoteMessage) (core.QuoteResponse, error) {
	if q == nil || q.reader == nil {
		return core.QuoteResponse{}, queryDependencyError("query: resource reader is required")
	}
	if err := msg.Validate(); err != nil {
		return core.QuoteResponse{}, queryWrapValidation(err, "query: get quote validation failed")
	}
	return q.reader.GetQuote(ctx, msg.Token, msg.Request)
}
