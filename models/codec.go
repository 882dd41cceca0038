// models/codec.go
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ValidationError reports why an imported snapshot was rejected. The
// caller's invoice is never touched when one of these comes back.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid invoice: " + e.Reason
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Serialize encodes the invoice as a pretty-printed, re-importable JSON
// snapshot. Every field is included, line item order and ids intact.
func Serialize(inv *Invoice) ([]byte, error) {
	return json.MarshalIndent(inv, "", "  ")
}

// Deserialize parses a snapshot back into an Invoice. It is
// all-or-nothing: on any syntax or shape problem the result is a
// *ValidationError and no invoice, never a half-populated one.
func Deserialize(data []byte) (*Invoice, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var inv Invoice
	if err := dec.Decode(&inv); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, invalid("field %q must be %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return nil, invalid("not a valid JSON snapshot: %v", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, invalid("trailing data after snapshot")
	}

	seen := make(map[string]bool, len(inv.Items))
	for i, it := range inv.Items {
		if it.ID == "" {
			return nil, invalid("item %d has no id", i)
		}
		if seen[it.ID] {
			return nil, invalid("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}

	return &inv, nil
}
