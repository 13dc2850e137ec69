package query

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-paybyphone/core"
)

const (
	TypeListVehicles        = "paybyphone.query.vehicles.list"
	TypeListLocations       = "paybyphone.query.locations.list"
	TypeListPaymentMethods  = "paybyphone.query.payment_methods.list"
	TypeListParkingSessions = "paybyphone.query.parking_sessions.list"
	TypeGetRate             = "paybyphone.query.rates.get"
	TypeGetQuote            = "paybyphone.query.quotes.get"
)

type ListVehiclesMessage struct {
	Token string
	// IncludeArchived keeps archived vehicles in the result; by default they
	// are filtered out after the fetch, mirroring the remote list behavior.
	IncludeArchived bool
}

func (ListVehiclesMessage) Type() string { return TypeListVehicles }

func (m ListVehiclesMessage) Validate() error {
	return validateToken(m.Token)
}

type ListLocationsMessage struct {
	Token                    string
	AdvertisedLocationNumber string
}

func (ListLocationsMessage) Type() string { return TypeListLocations }

func (m ListLocationsMessage) Validate() error {
	if err := validateToken(m.Token); err != nil {
		return err
	}
	if strings.TrimSpace(m.AdvertisedLocationNumber) == "" {
		return fmt.Errorf("query: advertised location number is required")
	}
	return nil
}

type ListPaymentMethodsMessage struct {
	Token string
}

func (ListPaymentMethodsMessage) Type() string { return TypeListPaymentMethods }

func (m ListPaymentMethodsMessage) Validate() error {
	return validateToken(m.Token)
}

type ListParkingSessionsMessage struct {
	Token string
	// IncludePast appends the HISTORIC period after the CURRENT one; the
	// remote API accepts one period per call.
	IncludePast bool
}

func (ListParkingSessionsMessage) Type() string { return TypeListParkingSessions }

func (m ListParkingSessionsMessage) Validate() error {
	return validateToken(m.Token)
}

type GetRateMessage struct {
	Token        string
	LocationID   string
	LicensePlate string
}

func (GetRateMessage) Type() string { return TypeGetRate }

func (m GetRateMessage) Validate() error {
	if err := validateToken(m.Token); err != nil {
		return err
	}
	if strings.TrimSpace(m.LocationID) == "" {
		return fmt.Errorf("query: location id is required")
	}
	if strings.TrimSpace(m.LicensePlate) == "" {
		return fmt.Errorf("query: license plate is required")
	}
	return nil
}

type GetQuoteMessage struct {
	Token   string
	Request core.QuoteRequest
}

func (GetQuoteMessage) Type() string { return TypeGetQuote }

func (m GetQuoteMessage) Validate() error {
	if err := validateToken(m.Token); err != nil {
		return err
	}
	return m.Request.Validate()
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("query: access token is required")
	}
	return nil
}
