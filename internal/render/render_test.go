package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pders01/abref/internal/models"
)

var testRef = models.Ref{Key: "abc123", Name: "Main Branch", Role: "head"}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: " toon ", want: FormatToon},
		{in: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, testRef); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "abc123\n" {
		t.Errorf("expected bare key with newline, got %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, testRef); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got models.Ref
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(testRef, got); diff != "" {
		t.Errorf("ref mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONOmitsEmptyRole(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, models.Ref{Key: "k", Name: "n"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "role") {
		t.Errorf("expected role to be omitted, got %s", buf.String())
	}
}

func TestWriteToon(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatToon, testRef); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("expected key in toon output, got %q", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), testRef); err == nil {
		t.Error("expected error for unknown format")
	}
}
