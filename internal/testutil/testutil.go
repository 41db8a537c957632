// Package testutil provides shared test helpers for decoding definition
// documents and asserting on their serialized form.
package testutil

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Decoding
// ============================================================================

// DecodeYAML decodes doc into a T, rejecting unknown fields the way the
// definition loader does.
func DecodeYAML[T any](t *testing.T, doc string) T {
	t.Helper()
	var out T
	dec := yaml.NewDecoder(strings.NewReader(doc))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		t.Fatalf("failed to decode YAML: %v\n%s", err, doc)
	}
	return out
}

// ============================================================================
// Serialized Field Assertions
// ============================================================================

// AssertYAMLOmitsField verifies a field is not present in marshalled YAML output.
func AssertYAMLOmitsField(t *testing.T, v any, fieldName string) {
	t.Helper()
	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if strings.Contains(string(data), fieldName+":") {
		t.Errorf("expected field %q to be omitted from YAML output, got:\n%s", fieldName, string(data))
	}
}

// AssertJSONEquals marshals v and compares it with want after compacting both.
func AssertJSONEquals(t *testing.T, v any, want string) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(want)); err != nil {
		t.Fatalf("invalid expected JSON: %v", err)
	}
	if string(data) != compact.String() {
		t.Errorf("JSON mismatch:\ngot:  %s\nwant: %s", data, compact.String())
	}
}

// ============================================================================
// Equality Assertions
// ============================================================================

// AssertEqual fails the test if got != want using reflect.DeepEqual.
func AssertEqual[T any](t *testing.T, got, want T, msg string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %+v, want %+v", msg, got, want)
	}
}
