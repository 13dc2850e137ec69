package devkit

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-paybyphone/core"
)

func TestFakeTransportAdapter_ReplaysScriptsInOrder(t *testing.T) {
	scriptErr := errors.New("boom")
	fake := NewFakeTransportAdapter(" REST ",
		TransportScript{Response: JSONResponse(200, `{"first":true}`)},
		TransportScript{Err: scriptErr},
	)

	if fake.Kind() != "rest" {
		t.Fatalf("kind not normalized: %q", fake.Kind())
	}

	first, err := fake.Do(context.Background(), core.TransportRequest{URL: "https://example.com/a"})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(first.Body) != `{"first":true}` {
		t.Fatalf("unexpected first body: %s", first.Body)
	}

	if _, err := fake.Do(context.Background(), core.TransportRequest{URL: "https://example.com/b"}); !errors.Is(err, scriptErr) {
		t.Fatalf("expected scripted error, got %v", err)
	}

	// Past the end of the script the last entry repeats.
	if _, err := fake.Do(context.Background(), core.TransportRequest{}); !errors.Is(err, scriptErr) {
		t.Fatalf("expected repeated last entry, got %v", err)
	}

	requests := fake.Requests()
	if len(requests) != 3 {
		t.Fatalf("expected 3 recorded requests, got %d", len(requests))
	}
	if requests[0].URL != "https://example.com/a" || requests[1].URL != "https://example.com/b" {
		t.Fatalf("request order lost: %#v", requests)
	}
}

func TestFakeTransportAdapter_RecordsACopyOfRequests(t *testing.T) {
	fake := NewFakeTransportAdapter("graphql")
	headers := map[string]string{"Authorization": "Bearer tok"}
	if _, err := fake.Do(context.Background(), core.TransportRequest{Headers: headers}); err != nil {
		t.Fatalf("do: %v", err)
	}

	headers["Authorization"] = "mutated"
	recorded := fake.Requests()[0]
	if recorded.Headers["Authorization"] != "Bearer tok" {
		t.Fatalf("recorded request shares caller state: %#v", recorded.Headers)
	}
}
