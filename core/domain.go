package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPeriodType = errors.New("core: invalid period type")
	ErrMissingQuoteID    = errors.New("core: quote id is required")
)

// PeriodType selects which slice of the parking session history a query
// covers. The remote API does not accept a combined period; callers needing
// both issue two calls.
type PeriodType string

const (
	PeriodTypeCurrent  PeriodType = "CURRENT"
	PeriodTypeHistoric PeriodType = "HISTORIC"
)

func (p PeriodType) Validate() error {
	switch p {
	case PeriodTypeCurrent, PeriodTypeHistoric:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPeriodType, string(p))
}

// Credentials are supplied by the caller before the first call; the client
// never persists them.
type Credentials struct {
	MobileNumber string
	Password     string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.MobileNumber) == "" {
		return fmt.Errorf("core: mobile number is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return fmt.Errorf("core: password is required")
	}
	return nil
}

// Money mirrors the GraphQL cost shape. Amount stays a json.Number so values
// copied between workflow steps round-trip without unit or precision drift.
type Money struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

type Vehicle struct {
	VehicleID       string `json:"vehicleId"`
	LegacyVehicleID string `json:"legacyVehicleId"`
	LicensePlate    string `json:"licensePlate"`
	Type            string `json:"type"`
	Country         string `json:"country"`
	Jurisdiction    string `json:"jurisdiction"`
	Archived        bool   `json:"archived"`
}

// Location payloads are inventory metadata keyed by an externally supplied
// advertised location number. Only a handful of fields are documented, so the
// whole object is surfaced as a decoded JSON tree.
type Location = map[string]any

// RateOption trees carry nested restriction periods, promotions, and time
// step constraints whose schema is not stable beyond the documented fields;
// they are surfaced as decoded, normalized JSON trees.
type RateOption = map[string]any

type PaymentMethods struct {
	PaymentCards []map[string]any `json:"paymentCards"`
}

type QuoteRequest struct {
	LocationID       string
	LicensePlate     string
	DurationTimeUnit string
	Duration         int
	RatePolicyID     string
}

func (r QuoteRequest) Validate() error {
	if strings.TrimSpace(r.LocationID) == "" {
		return fmt.Errorf("core: location id is required")
	}
	if strings.TrimSpace(r.LicensePlate) == "" {
		return fmt.Errorf("core: license plate is required")
	}
	if strings.TrimSpace(r.DurationTimeUnit) == "" {
		return fmt.Errorf("core: duration time unit is required")
	}
	if r.Duration <= 0 {
		return fmt.Errorf("core: duration must be positive")
	}
	if strings.TrimSpace(r.RatePolicyID) == "" {
		return fmt.Errorf("core: rate policy id is required")
	}
	return nil
}

type Quote struct {
	QuoteID        string         `json:"quoteId"`
	QuoteRequestID string         `json:"quoteRequestId"`
	Cost           Money          `json:"cost"`
	Details        map[string]any `json:"details"`
	Product        string         `json:"product"`
}

type QuoteError struct {
	QuoteRequestID string `json:"quoteRequestId"`
	Product        string `json:"product"`
	Status         string `json:"status"`
	Reason         string `json:"reason"`
}

type QuoteResponse struct {
	TotalCost   Money        `json:"totalCost"`
	Quotes      []Quote      `json:"quotes"`
	QuoteErrors []QuoteError `json:"quoteErrors"`
}

// ParkingSession is the step-1 output of the start-session workflow. It is
// consumed immediately by the capture-job step and never persisted.
type ParkingSession struct {
	ParkingSessionID string         `json:"parkingSessionId"`
	ExpireTime       string         `json:"expireTime"`
	IsEarlyCapture   bool           `json:"isEarlyCapture"`
	SegmentTotalCost Money          `json:"segmentTotalCost"`
	Metadata         map[string]any `json:"metadata"`
}

// ParkingSegmentID extracts the segment identifier the capture job's line
// item metadata must reference.
func (s ParkingSession) ParkingSegmentID() (string, bool) {
	if len(s.Metadata) == 0 {
		return "", false
	}
	value, ok := s.Metadata["parkingSegmentId"]
	if !ok || value == nil {
		return "", false
	}
	segment := strings.TrimSpace(fmt.Sprint(value))
	if segment == "" || segment == "<nil>" {
		return "", false
	}
	return segment, true
}

type CaptureJob struct {
	JobID string `json:"jobId"`
}

// JobStatus is the step-3 result. Capture group and execution detail shapes
// are owned by the remote schema and surfaced as decoded JSON trees.
type JobStatus struct {
	JobID            string           `json:"jobId"`
	Status           string           `json:"status"`
	CaptureGroups    []map[string]any `json:"captureGroups"`
	ExecutionDetails map[string]any   `json:"executionDetails"`
}
