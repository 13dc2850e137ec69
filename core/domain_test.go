package core

import (
	"errors"
	"testing"
)

func TestPeriodTypeValidate(t *testing.T) {
	if err := PeriodTypeCurrent.Validate(); err != nil {
		t.Fatalf("current period should validate: %v", err)
	}
	if err := PeriodTypeHistoric.Validate(); err != nil {
		t.Fatalf("historic period should validate: %v", err)
	}

	err := PeriodType("current").Validate()
	if err == nil {
		t.Fatalf("lowercase period should be rejected")
	}
	if !errors.Is(err, ErrInvalidPeriodType) {
		t.Fatalf("expected invalid period sentinel, got %v", err)
	}
}

func TestCredentialsValidate(t *testing.T) {
	creds := Credentials{MobileNumber: "07700900000", Password: "secret"}
	if err := creds.Validate(); err != nil {
		t.Fatalf("credentials should validate: %v", err)
	}
	if err := (Credentials{Password: "secret"}).Validate(); err == nil {
		t.Fatalf("expected error for missing mobile number")
	}
	if err := (Credentials{MobileNumber: "07700900000", Password: "  "}).Validate(); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestQuoteRequestValidate(t *testing.T) {
	valid := QuoteRequest{
		LocationID:       "loc-1",
		LicensePlate:     "AB12CDE",
		DurationTimeUnit: "Minutes",
		Duration:         30,
		RatePolicyID:     "policy-1",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("request should validate: %v", err)
	}

	invalid := valid
	invalid.Duration = 0
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for zero duration")
	}

	invalid = valid
	invalid.RatePolicyID = ""
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for missing rate policy")
	}
}

func TestParkingSessionSegmentID(t *testing.T) {
	session := ParkingSession{Metadata: map[string]any{"parkingSegmentId": "seg-1"}}
	segment, ok := session.ParkingSegmentID()
	if !ok || segment != "seg-1" {
		t.Fatalf("unexpected segment: %q %v", segment, ok)
	}

	if _, ok := (ParkingSession{}).ParkingSegmentID(); ok {
		t.Fatalf("expected miss without metadata")
	}
	if _, ok := (ParkingSession{Metadata: map[string]any{"parkingSegmentId": nil}}).ParkingSegmentID(); ok {
		t.Fatalf("expected miss for nil segment value")
	}
	if _, ok := (ParkingSession{Metadata: map[string]any{"parkingSegmentId": "  "}}).ParkingSegmentID(); ok {
		t.Fatalf("expected miss for blank segment value")
	}
}
