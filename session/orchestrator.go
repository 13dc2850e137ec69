// Package session orchestrates the three-step start-parking workflow: create
// the session from a quote, attach a payment capture job, then query the job
// status after the remote processing delay.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-paybyphone/core"
	"github.com/goliatone/go-paybyphone/graphql"
	"github.com/goliatone/go-paybyphone/normalize"
	"github.com/tidwall/gjson"
)

// GraphQLExecutor issues one GraphQL call with the bearer token attached and
// returns the raw response body after server-side error translation.
type GraphQLExecutor interface {
	ExecuteGraphQL(
		ctx context.Context,
		token string,
		document string,
		variables map[string]any,
		workflowID string,
	) ([]byte, error)
}

type Config struct {
	VendorID string
	// JobStatusDelay is the processing latency the remote system needs
	// between job creation and the first status query. It is not a retry
	// backoff; the status is queried exactly once.
	JobStatusDelay time.Duration
}

type Orchestrator struct {
	executor GraphQLExecutor
	config   Config
	sleeper  core.Sleeper
	logger   core.Logger
	metrics  core.MetricsRecorder
}

type Option func(*Orchestrator)

func WithSleeper(sleeper core.Sleeper) Option {
	return func(o *Orchestrator) {
		if sleeper != nil {
			o.sleeper = sleeper
		}
	}
}

func WithLogger(logger core.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetricsRecorder(metrics core.MetricsRecorder) Option {
	return func(o *Orchestrator) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

func NewOrchestrator(executor GraphQLExecutor, cfg Config, opts ...Option) *Orchestrator {
	defaults := core.DefaultConfig()
	if strings.TrimSpace(cfg.VendorID) == "" {
		cfg.VendorID = defaults.VendorID
	}
	if cfg.JobStatusDelay <= 0 {
		cfg.JobStatusDelay = defaults.JobStatusDelay
	}
	_, logger := glog.Resolve("paybyphone.session", nil, nil)
	orchestrator := &Orchestrator{
		executor: executor,
		config:   cfg,
		sleeper:  core.TimerSleeper{},
		logger:   glog.Ensure(logger),
		metrics:  core.NopMetricsRecorder{},
	}
	for _, opt := range opts {
		opt(orchestrator)
	}
	return orchestrator
}

const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/145.0.0.0 Safari/537.36 Edg/145.0.0.0"

// clientBrowserDetails is the fixed synthetic fingerprint the payment flow
// expects. The values are not per-user telemetry.
func clientBrowserDetails() map[string]any {
	return map[string]any{
		"browserAcceptHeader": "text/html",
		"browserColorDepth":   30,
		"browserJavaEnabled":  false,
		"browserLanguage":     "en-GB",
		"browserScreenHeight": 1440,
		"browserScreenWidth":  2560,
		"browserTimeZone":     60,
		"browserUserAgent":    browserUserAgent,
		"flag3D":              "Y",
		"httpAccept":          "*/*",
		"httpUserAgent":       browserUserAgent,
	}
}

// StartParkingSession runs the three steps in order. A step-1 failure leaves
// no remote state. Failures in step 2 or 3 happen after the session side
// effect committed; they are surfaced with the session id attached and no
// compensating action is attempted.
func (o *Orchestrator) StartParkingSession(
	ctx context.Context,
	token string,
	quoteID string,
	paymentAccountID string,
) (core.JobStatus, error) {
	if o == nil || o.executor == nil {
		return core.JobStatus{}, core.NewBadInputError("session: orchestrator requires a graphql executor")
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return core.JobStatus{}, core.NewBadInputError(core.ErrMissingQuoteID.Error())
	}
	if strings.TrimSpace(paymentAccountID) == "" {
		return core.JobStatus{}, core.NewBadInputError("session: payment account id is required")
	}

	startedAt := time.Now().UTC()
	parking, err := o.createSession(ctx, token, quoteID)
	if err != nil {
		core.ObserveOperation(ctx, o.logger, o.metrics, startedAt, "session.start", err, map[string]any{
			"quote_id":      quoteID,
			"workflow_step": "start_session",
		})
		return core.JobStatus{}, err
	}

	job, err := o.createCaptureJob(ctx, token, parking, paymentAccountID)
	if err != nil {
		wrapped := core.WrapWorkflowError(err, parking.ParkingSessionID, "create_job")
		core.ObserveOperation(ctx, o.logger, o.metrics, startedAt, "session.start", wrapped, map[string]any{
			"quote_id":           quoteID,
			"parking_session_id": parking.ParkingSessionID,
			"workflow_step":      "create_job",
		})
		return core.JobStatus{}, wrapped
	}

	status, err := o.pollJobStatus(ctx, token, parking.ParkingSessionID, job.JobID)
	fields := map[string]any{
		"quote_id":           quoteID,
		"parking_session_id": parking.ParkingSessionID,
		"job_id":             job.JobID,
	}
	if err != nil {
		wrapped := core.WrapWorkflowError(err, parking.ParkingSessionID, "get_job")
		core.ObserveOperation(ctx, o.logger, o.metrics, startedAt, "session.start", wrapped, fields)
		return core.JobStatus{}, wrapped
	}
	core.ObserveOperation(ctx, o.logger, o.metrics, startedAt, "session.start", nil, fields)
	return status, nil
}

func (o *Orchestrator) createSession(ctx context.Context, token string, quoteID string) (core.ParkingSession, error) {
	body, err := o.executor.ExecuteGraphQL(ctx, token, graphql.StartParkingSession, map[string]any{
		"input": map[string]any{
			"request": map[string]any{"quoteId": quoteID},
		},
	}, "")
	if err != nil {
		return core.ParkingSession{}, err
	}

	node := gjson.GetBytes(body, "data.startParkingSessionV1.parkingSessionResponse")
	if !node.Exists() {
		return core.ParkingSession{}, unexpectedShapeError("startParkingSessionV1")
	}
	normalized, err := normalize.StripJSON([]byte(node.Raw))
	if err != nil {
		return core.ParkingSession{}, core.WrapTransportError(err, "session: decode session response", nil)
	}
	var parking core.ParkingSession
	if err := normalize.DecodeInto(normalized, &parking); err != nil {
		return core.ParkingSession{}, core.WrapTransportError(err, "session: decode session response", nil)
	}
	if strings.TrimSpace(parking.ParkingSessionID) == "" {
		return core.ParkingSession{}, unexpectedShapeError("startParkingSessionV1")
	}
	return parking, nil
}

func (o *Orchestrator) createCaptureJob(
	ctx context.Context,
	token string,
	parking core.ParkingSession,
	paymentAccountID string,
) (core.CaptureJob, error) {
	segmentMetadata := map[string]any{}
	if segmentID, ok := parking.ParkingSegmentID(); ok {
		segmentMetadata["parkingSegmentId"] = segmentID
	}
	metadataJSON, err := json.Marshal(segmentMetadata)
	if err != nil {
		return core.CaptureJob{}, core.WrapTransportError(err, "session: encode line item metadata", nil)
	}

	// Amount and currency are copied from the session response exactly; no
	// unit conversion happens between steps.
	lineItem := map[string]any{
		"productType":        "parking",
		"productReferenceId": parking.ParkingSessionID,
		"vendorId":           o.config.VendorID,
		"endingTime":         parking.ExpireTime,
		"isEarlyCapture":     parking.IsEarlyCapture,
		"amount": map[string]any{
			"value":           parking.SegmentTotalCost.Amount,
			"isoCurrencyCode": parking.SegmentTotalCost.Currency,
		},
		"required": true,
		"metadata": string(metadataJSON),
	}
	variables := map[string]any{
		"input": map[string]any{
			"request": map[string]any{
				"paymentMethod": map[string]any{
					"paymentMethodType": "PaymentAccount",
					"paymentDetails": map[string]any{
						"$type":                "paymentAccount",
						"paymentAccountId":     paymentAccountID,
						"cvv":                  nil,
						"clientBrowserDetails": clientBrowserDetails(),
					},
				},
				"lineItems": []any{lineItem},
			},
		},
	}

	body, err := o.executor.ExecuteGraphQL(ctx, token, graphql.CreateJob, variables, parking.ParkingSessionID)
	if err != nil {
		return core.CaptureJob{}, err
	}

	node := gjson.GetBytes(body, "data.createJobV1.createJobResponse")
	if !node.Exists() {
		return core.CaptureJob{}, unexpectedShapeError("createJobV1")
	}
	normalized, err := normalize.StripJSON([]byte(node.Raw))
	if err != nil {
		return core.CaptureJob{}, core.WrapTransportError(err, "session: decode job response", nil)
	}
	var job core.CaptureJob
	if err := normalize.DecodeInto(normalized, &job); err != nil {
		return core.CaptureJob{}, core.WrapTransportError(err, "session: decode job response", nil)
	}
	if strings.TrimSpace(job.JobID) == "" {
		return core.CaptureJob{}, unexpectedShapeError("createJobV1")
	}
	return job, nil
}

func (o *Orchestrator) pollJobStatus(
	ctx context.Context,
	token string,
	sessionID string,
	jobID string,
) (core.JobStatus, error) {
	sleeper := o.sleeper
	if sleeper == nil {
		sleeper = core.TimerSleeper{}
	}
	if err := sleeper.Sleep(ctx, o.config.JobStatusDelay); err != nil {
		return core.JobStatus{}, err
	}

	body, err := o.executor.ExecuteGraphQL(ctx, token, graphql.GetJob, map[string]any{
		"jobId": jobID,
	}, sessionID)
	if err != nil {
		return core.JobStatus{}, err
	}

	node := gjson.GetBytes(body, "data.getJobV1")
	if !node.Exists() {
		return core.JobStatus{}, unexpectedShapeError("getJobV1")
	}
	normalized, err := normalize.StripJSON([]byte(node.Raw))
	if err != nil {
		return core.JobStatus{}, core.WrapTransportError(err, "session: decode job status", nil)
	}
	var status core.JobStatus
	if err := normalize.DecodeInto(normalized, &status); err != nil {
		return core.JobStatus{}, core.WrapTransportError(err, "session: decode job status", nil)
	}
	return status, nil
}

func unexpectedShapeError(field string) error {
	return goerrors.New("session: response is missing the "+field+" payload", goerrors.CategoryExternal).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.ErrorCodeTransport).
		WithMetadata(map[string]any{"field": field})
}
