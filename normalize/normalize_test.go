package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStripMetadata_RemovesTypenameAtEveryDepth(t *testing.T) {
	input := map[string]any{
		"__typename": "Quote",
		"quoteId":    "quote-1",
		"cost": map[string]any{
			"__typename": "Money",
			"amount":     json.Number("2.50"),
			"currency":   "GBP",
		},
		"segments": []any{
			map[string]any{
				"__typename":       "Segment",
				"parkingSegmentId": "seg-1",
			},
		},
	}

	got := StripMetadata(input)
	want := map[string]any{
		"quoteId": "quote-1",
		"cost": map[string]any{
			"amount":   json.Number("2.50"),
			"currency": "GBP",
		},
		"segments": []any{
			map[string]any{"parkingSegmentId": "seg-1"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree: %#v", got)
	}
}

func TestStripMetadata_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"__typename": "Money",
		"amount":     json.Number("1"),
	}

	StripMetadata(input)
	if _, ok := input["__typename"]; !ok {
		t.Fatalf("input tree was mutated")
	}
}

func TestStripMetadata_IsIdempotent(t *testing.T) {
	input := map[string]any{
		"__typename": "Node",
		"items":      []any{json.Number("1"), "two", nil, true},
	}

	once := StripMetadata(input)
	twice := StripMetadata(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed the tree: %#v vs %#v", once, twice)
	}
}

func TestStripMetadata_PreservesArrayOrder(t *testing.T) {
	input := []any{"a", "b", "c"}
	got, ok := StripMetadata(input).([]any)
	if !ok {
		t.Fatalf("expected slice result")
	}
	if !reflect.DeepEqual(got, []any{"a", "b", "c"}) {
		t.Fatalf("array order changed: %#v", got)
	}
}

func TestStripMetadata_PassesScalarsThrough(t *testing.T) {
	for _, value := range []any{nil, "text", true, json.Number("42")} {
		if got := StripMetadata(value); got != value {
			t.Fatalf("scalar %#v changed to %#v", value, got)
		}
	}
}

func TestStripJSON_UsesNumberForAmounts(t *testing.T) {
	node, err := StripJSON([]byte(`{"__typename":"Money","amount":2.50,"currency":"GBP"}`))
	if err != nil {
		t.Fatalf("strip json: %v", err)
	}
	tree, ok := node.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %#v", node)
	}
	amount, ok := tree["amount"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number amount, got %T", tree["amount"])
	}
	if amount.String() != "2.50" {
		t.Fatalf("amount lost its exact form: %q", amount.String())
	}
	if _, ok := tree["__typename"]; ok {
		t.Fatalf("metadata key survived")
	}
}

func TestStripJSON_RejectsInvalidPayload(t *testing.T) {
	if _, err := StripJSON([]byte(`{"broken"`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDecodeInto_RoundTripsTypedStructs(t *testing.T) {
	node, err := StripJSON([]byte(`{
		"__typename": "Response",
		"totalCost": {"__typename": "Money", "amount": 2.50, "currency": "GBP"}
	}`))
	if err != nil {
		t.Fatalf("strip json: %v", err)
	}

	var out struct {
		TotalCost struct {
			Amount   json.Number `json:"amount"`
			Currency string      `json:"currency"`
		} `json:"totalCost"`
	}
	if err := DecodeInto(node, &out); err != nil {
		t.Fatalf("decode into: %v", err)
	}
	if out.TotalCost.Amount.String() != "2.50" || out.TotalCost.Currency != "GBP" {
		t.Fatalf("unexpected decode result: %#v", out)
	}
}
