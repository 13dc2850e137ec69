// Package normalize strips GraphQL introspection metadata from decoded
// response trees before they are returned to callers.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const metadataKeyPrefix = "__typename"

// StripMetadata returns a copy of node with every object key that begins
// with the introspection prefix removed, at any depth. Array ordering and
// scalar values are preserved; the input tree is never mutated. The transform
// is idempotent. Behavior on cyclic values is undefined; decoded wire JSON is
// acyclic by construction.
func StripMetadata(node any) any {
	switch typed := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			if strings.HasPrefix(key, metadataKeyPrefix) {
				continue
			}
			out[key] = StripMetadata(value)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = StripMetadata(value)
		}
		return out
	default:
		return node
	}
}

// StripJSON decodes raw JSON and strips introspection metadata. Numbers are
// decoded as json.Number so cost values survive re-encoding without
// precision drift.
func StripJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var node any
	if err := decoder.Decode(&node); err != nil {
		return nil, fmt.Errorf("normalize: decode json: %w", err)
	}
	return StripMetadata(node), nil
}

// DecodeInto re-encodes a decoded tree into a typed structure. Combined with
// StripJSON it turns a normalized response subtree into domain types while
// keeping undocumented regions as plain maps.
func DecodeInto(node any, out any) error {
	data, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("normalize: encode tree: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("normalize: decode tree: %w", err)
	}
	return nil
}
