package devkit

import (
	"fmt"

	"github.com/goliatone/go-paybyphone/core"
)

// JSONResponse wraps a JSON payload in a transport response with the given
// status code.
func JSONResponse(statusCode int, body string) core.TransportResponse {
	return core.TransportResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(body),
	}
}

// TokenResponse mimics the identity token endpoint for a successful
// password-grant exchange.
func TokenResponse(accessToken string) core.TransportResponse {
	return JSONResponse(200, fmt.Sprintf(
		`{"access_token":%q,"token_type":"Bearer","expires_in":899}`, accessToken))
}

// EmptyTokenResponse mimics the identity endpoint rejecting credentials
// without an error status.
func EmptyTokenResponse() core.TransportResponse {
	return JSONResponse(200, `{}`)
}

// VehiclesBody is a two-entry vehicle list with one archived vehicle.
const VehiclesBody = `[
  {"vehicleId":"veh-1","legacyVehicleId":"101","licensePlate":"AB12CDE","type":"Car","country":"GB","jurisdiction":"GB","archived":false},
  {"vehicleId":"veh-2","legacyVehicleId":"102","licensePlate":"ZZ99ZZZ","type":"Car","country":"GB","jurisdiction":"GB","archived":true}
]`

// LocationsBody is a single-entry inventory lookup result.
const LocationsBody = `[
  {"locationId":"loc-1","advertisedLocationNumber":"12345","name":"High Street","vendorId":"6201"}
]`

// PaymentMethodsBody carries one stored payment card.
const PaymentMethodsBody = `{
  "paymentCards": [
    {"paymentAccountId":"pay-1","maskedCardNumber":"************1111","cardType":"Visa","expiryMonth":12,"expiryYear":2030}
  ]
}`

// ParkingSessionsBody is a GraphQL list response that still carries the
// server's __typename markers.
const ParkingSessionsBody = `{
  "data": {
    "getParkingSessionsV1": [
      {
        "__typename": "ParkingSession",
        "parkingSessionId": "sess-1",
        "licensePlate": "AB12CDE",
        "expireTime": "2026-09-01T12:30:00Z",
        "segments": [{"__typename": "ParkingSegment", "parkingSegmentId": "seg-1"}]
      }
    ]
  }
}`

// RateOptionsBody is a GraphQL rate option response with __typename markers.
const RateOptionsBody = `{
  "data": {
    "getRateOptionsV1": [
      {
        "__typename": "RateOption",
        "rateOptionId": "rate-1",
        "ratePolicyId": "policy-1",
        "type": "Duration",
        "acceptedTimeUnits": [{"__typename": "TimeUnit", "timeUnit": "Minutes"}]
      }
    ]
  }
}`

// QuoteBody answers a single-request quote batch with one accepted quote.
const QuoteBody = `{
  "data": {
    "createQuotesV1": {
      "__typename": "CreateQuotesPayload",
      "createQuotesResponse": {
        "__typename": "CreateQuotesResponse",
        "totalCost": {"__typename": "Money", "amount": 2.50, "currency": "GBP"},
        "quotes": [
          {
            "__typename": "Quote",
            "quoteId": "quote-1",
            "quoteRequestId": "req-1",
            "product": "PARKING",
            "cost": {"__typename": "Money", "amount": 2.50, "currency": "GBP"},
            "details": {"__typename": "QuoteDetails", "locationId": "loc-1"}
          }
        ],
        "quoteErrors": []
      }
    }
  }
}`

// SessionStartBody is the step-1 response of the start workflow. The segment
// total cost feeds the capture job verbatim, so the amount here deliberately
// has a trailing zero that must survive the round trip.
const SessionStartBody = `{
  "data": {
    "startParkingSessionV1": {
      "__typename": "StartParkingSessionPayload",
      "parkingSessionResponse": {
        "__typename": "ParkingSessionResponse",
        "parkingSessionId": "sess-new",
        "expireTime": "2026-09-01T13:00:00Z",
        "isEarlyCapture": true,
        "segmentTotalCost": {"__typename": "Money", "amount": 2.50, "currency": "GBP"},
        "metadata": {"__typename": "SessionMetadata", "parkingSegmentId": "seg-new"}
      }
    }
  }
}`

// CreateJobBody is the step-2 response carrying the capture job id.
const CreateJobBody = `{
  "data": {
    "createJobV1": {
      "__typename": "CreateJobPayload",
      "createJobResponse": {"__typename": "CreateJobResponse", "jobId": "job-1"}
    }
  }
}`

// JobStatusBody is the step-3 response for a completed capture job.
const JobStatusBody = `{
  "data": {
    "getJobV1": {
      "__typename": "Job",
      "jobId": "job-1",
      "status": "Completed",
      "captureGroups": [{"__typename": "CaptureGroup", "captureGroupId": "cap-1"}],
      "executionDetails": {"__typename": "ExecutionDetails", "completedAt": "2026-09-01T12:00:06Z"}
    }
  }
}`

// GraphQLErrorsBody carries a top-level GraphQL error list.
const GraphQLErrorsBody = `{
  "errors": [
    {"message": "Quote expired"},
    {"message": "Rate no longer available"}
  ]
}`
