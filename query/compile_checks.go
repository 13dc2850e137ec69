package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-paybyphone/core"
)

var (
	_ gocmd.Querier[ListVehiclesMessage, []core.Vehicle]            = (*ListVehiclesQuery)(nil)
	_ gocmd.Querier[ListLocationsMessage, []core.Location]          = (*ListLocationsQuery)(nil)
	_ gocmd.Querier[ListPaymentMethodsMessage, core.PaymentMethods] = (*ListPaymentMethodsQuery)(nil)
	_ gocmd.Querier[ListParkingSessionsMessage, []map[string]any]   = (*ListParkingSessionsQuery)(nil)
	_ gocmd.Querier[GetRateMessage, []core.RateOption]              = (*GetRateQuery)(nil)
	_ gocmd.Querier[GetQuoteMessage, core.QuoteResponse]            = (*GetQuoteQuery)(nil)
)
