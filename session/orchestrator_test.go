package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-paybyphone/core"
	"github.com/goliatone/go-paybyphone/devkit"
	"github.com/goliatone/go-paybyphone/graphql"
)

type executorCall struct {
	document   string
	variables  map[string]any
	workflowID string
}

type scriptedExecutor struct {
	calls     []executorCall
	responses []func() ([]byte, error)
}

func (e *scriptedExecutor) ExecuteGraphQL(
	_ context.Context,
	_ string,
	document string,
	variables map[string]any,
	workflowID string,
) ([]byte, error) {
	e.calls = append(e.calls, executorCall{document: document, variables: variables, workflowID: workflowID})
	index := len(e.calls) - 1
	if index >= len(e.responses) {
		return nil, errors.New("scripted executor exhausted")
	}
	return e.responses[index]()
}

func okResponse(body string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(body), nil }
}

func errResponse(err error) func() ([]byte, error) {
	return func() ([]byte, error) { return nil, err }
}

type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return s.err
}

func newTestOrchestrator(executor GraphQLExecutor, sleeper core.Sleeper) *Orchestrator {
	return NewOrchestrator(executor, Config{JobStatusDelay: 5 * time.Second}, WithSleeper(sleeper))
}

func TestStartParkingSession_RunsThreeStepsInOrder(t *testing.T) {
	executor := &scriptedExecutor{responses: []func() ([]byte, error){
		okResponse(devkit.SessionStartBody),
		okResponse(devkit.CreateJobBody),
		okResponse(devkit.JobStatusBody),
	}}
	sleeper := &recordingSleeper{}
	orchestrator := newTestOrchestrator(executor, sleeper)

	status, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1")
	if err != nil {
		t.Fatalf("start parking session: %v", err)
	}
	if status.JobID != "job-1" || status.Status != "Completed" {
		t.Fatalf("unexpected status: %#v", status)
	}
	if len(status.CaptureGroups) != 1 {
		t.Fatalf("capture groups lost: %#v", status)
	}

	if len(executor.calls) != 3 {
		t.Fatalf("expected 3 graphql calls, got %d", len(executor.calls))
	}
	if executor.calls[0].document != graphql.StartParkingSession {
		t.Fatalf("step 1 used wrong document")
	}
	if executor.calls[1].document != graphql.CreateJob {
		t.Fatalf("step 2 used wrong document")
	}
	if executor.calls[2].document != graphql.GetJob {
		t.Fatalf("step 3 used wrong document")
	}

	// Steps 2 and 3 carry the new session id as the workflow correlation id;
	// step 1 runs before the id exists.
	if executor.calls[0].workflowID != "" {
		t.Fatalf("step 1 should have no workflow id: %q", executor.calls[0].workflowID)
	}
	if executor.calls[1].workflowID != "sess-new" || executor.calls[2].workflowID != "sess-new" {
		t.Fatalf("workflow id not propagated: %q %q",
			executor.calls[1].workflowID, executor.calls[2].workflowID)
	}

	if len(sleeper.delays) != 1 || sleeper.delays[0] != 5*time.Second {
		t.Fatalf("unexpected sleep sequence: %v", sleeper.delays)
	}
}

func TestStartParkingSession_CopiesCostIntoCaptureJobExactly(t *testing.T) {
	executor := &scriptedExecutor{responses: []func() ([]byte, error){
		okResponse(devkit.SessionStartBody),
		okResponse(devkit.CreateJobBody),
		okResponse(devkit.JobStatusBody),
	}}
	orchestrator := newTestOrchestrator(executor, &recordingSleeper{})

	if _, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1"); err != nil {
		t.Fatalf("start parking session: %v", err)
	}

	variables := executor.calls[1].variables
	request := variables["input"].(map[string]any)["request"].(map[string]any)
	lineItems := request["lineItems"].([]any)
	if len(lineItems) != 1 {
		t.Fatalf("expected one line item, got %d", len(lineItems))
	}
	lineItem := lineItems[0].(map[string]any)
	amount := lineItem["amount"].(map[string]any)

	value, ok := amount["value"].(json.Number)
	if !ok {
		t.Fatalf("amount value should stay a json.Number, got %T", amount["value"])
	}
	if value.String() != "2.50" {
		t.Fatalf("amount drifted: %q", value.String())
	}
	if amount["isoCurrencyCode"] != "GBP" {
		t.Fatalf("currency drifted: %#v", amount["isoCurrencyCode"])
	}
	if lineItem["productReferenceId"] != "sess-new" {
		t.Fatalf("session id not referenced: %#v", lineItem["productReferenceId"])
	}
	if lineItem["vendorId"] != "6201" {
		t.Fatalf("vendor id missing: %#v", lineItem["vendorId"])
	}

	metadataJSON, ok := lineItem["metadata"].(string)
	if !ok {
		t.Fatalf("line item metadata should be a json string, got %T", lineItem["metadata"])
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
		t.Fatalf("decode line item metadata: %v", err)
	}
	if metadata["parkingSegmentId"] != "seg-new" {
		t.Fatalf("segment id missing: %#v", metadata)
	}

	paymentMethod := request["paymentMethod"].(map[string]any)
	details := paymentMethod["paymentDetails"].(map[string]any)
	if details["$type"] != "paymentAccount" {
		t.Fatalf("payment details discriminator missing: %#v", details)
	}
	if details["paymentAccountId"] != "pay-1" {
		t.Fatalf("payment account not carried: %#v", details)
	}
	if cvv, ok := details["cvv"]; !ok || cvv != nil {
		t.Fatalf("cvv must be an explicit null: %#v %v", cvv, ok)
	}
}

func TestStartParkingSession_Step1ErrorPropagatesUnwrapped(t *testing.T) {
	source := core.NewGraphQLError([]string{"Quote expired", "Rate no longer available"})
	executor := &scriptedExecutor{responses: []func() ([]byte, error){errResponse(source)}}
	orchestrator := newTestOrchestrator(executor, &recordingSleeper{})

	_, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1")
	if err == nil {
		t.Fatalf("expected failure")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected rich error, got %T", err)
	}
	if rich.Message != "GraphQL Error: Quote expired; Rate no longer available" {
		t.Fatalf("step 1 error was rewrapped: %q", rich.Message)
	}
	if rich.TextCode != core.ErrorCodeGraphQL {
		t.Fatalf("unexpected text code: %q", rich.TextCode)
	}
}

func TestStartParkingSession_Step2FailureCarriesSessionMetadata(t *testing.T) {
	executor := &scriptedExecutor{responses: []func() ([]byte, error){
		okResponse(devkit.SessionStartBody),
		errResponse(core.NewGraphQLError([]string{"capture rejected"})),
	}}
	orchestrator := newTestOrchestrator(executor, &recordingSleeper{})

	_, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1")
	if err == nil {
		t.Fatalf("expected failure")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected rich error, got %T", err)
	}
	if rich.TextCode != core.ErrorCodeWorkflowPartial {
		t.Fatalf("unexpected text code: %q", rich.TextCode)
	}
	if rich.Metadata["parking_session_id"] != "sess-new" {
		t.Fatalf("missing session id metadata: %#v", rich.Metadata)
	}
	if rich.Metadata["workflow_step"] != "create_job" {
		t.Fatalf("missing step metadata: %#v", rich.Metadata)
	}
}

func TestStartParkingSession_Step3FailureCarriesSessionMetadata(t *testing.T) {
	executor := &scriptedExecutor{responses: []func() ([]byte, error){
		okResponse(devkit.SessionStartBody),
		okResponse(devkit.CreateJobBody),
		errResponse(core.NewGraphQLError([]string{"job not found"})),
	}}
	orchestrator := newTestOrchestrator(executor, &recordingSleeper{})

	_, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1")
	if err == nil {
		t.Fatalf("expected failure")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected rich error, got %T", err)
	}
	if rich.TextCode != core.ErrorCodeWorkflowPartial {
		t.Fatalf("unexpected text code: %q", rich.TextCode)
	}
	if rich.Metadata["workflow_step"] != "get_job" {
		t.Fatalf("missing step metadata: %#v", rich.Metadata)
	}
}

func TestStartParkingSession_NoStatusQueryBeforeDelay(t *testing.T) {
	executor := &scriptedExecutor{responses: []func() ([]byte, error){
		okResponse(devkit.SessionStartBody),
		okResponse(devkit.CreateJobBody),
	}}
	sleeper := &recordingSleeper{err: context.Canceled}
	orchestrator := newTestOrchestrator(executor, sleeper)

	_, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1")
	if err == nil {
		t.Fatalf("expected cancellation to surface")
	}
	if len(executor.calls) != 2 {
		t.Fatalf("status query must not run when the delay is interrupted, got %d calls", len(executor.calls))
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancellation cause lost: %v", err)
	}
}

func TestStartParkingSession_ValidatesInputsBeforeAnyCall(t *testing.T) {
	executor := &scriptedExecutor{}
	orchestrator := newTestOrchestrator(executor, &recordingSleeper{})

	if _, err := orchestrator.StartParkingSession(context.Background(), "tok", " ", "pay-1"); err == nil {
		t.Fatalf("expected error for missing quote id")
	}
	if _, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", ""); err == nil {
		t.Fatalf("expected error for missing payment account")
	}
	if len(executor.calls) != 0 {
		t.Fatalf("no remote calls expected, got %d", len(executor.calls))
	}
}

func TestStartParkingSession_RejectsMalformedSessionResponse(t *testing.T) {
	executor := &scriptedExecutor{responses: []func() ([]byte, error){
		okResponse(`{"data":{"startParkingSessionV1":{}}}`),
	}}
	orchestrator := newTestOrchestrator(executor, &recordingSleeper{})

	_, err := orchestrator.StartParkingSession(context.Background(), "tok", "quote-1", "pay-1")
	if err == nil {
		t.Fatalf("expected shape error")
	}
	if len(executor.calls) != 1 {
		t.Fatalf("workflow must stop at step 1, got %d calls", len(executor.calls))
	}
}

func TestTimerSleeper_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := core.TimerSleeper{}.Sleep(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
