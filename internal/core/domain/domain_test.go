package domain

import (
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	valid := []string{"airline_10", "airport_1254", "route_10000", "hotel-3", "a.b:c"}
	for _, key := range valid {
		if err := ValidateKey(key); err != nil {
			t.Errorf("ValidateKey(%q) = %v, want nil", key, err)
		}
	}

	invalid := []string{"", "airline 10", "airline/10", "key\n"}
	for _, key := range invalid {
		if err := ValidateKey(key); err == nil {
			t.Errorf("ValidateKey(%q) = nil, want error", key)
		}
	}
}

func TestPageNormalized(t *testing.T) {
	tests := []struct {
		name       string
		in         Page
		wantLimit  int
		wantOffset int
	}{
		{"defaults kept", Page{Limit: 10, Offset: 0}, 10, 0},
		{"zero limit coerced", Page{Limit: 0}, DefaultPageLimit, 0},
		{"negative limit coerced", Page{Limit: -3}, DefaultPageLimit, 0},
		{"oversized limit clamped", Page{Limit: 5000}, MaxPageLimit, 0},
		{"negative offset coerced", Page{Limit: 10, Offset: -1}, 10, 0},
		{"valid bounds untouched", Page{Limit: 25, Offset: 50}, 25, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.Limit != tt.wantLimit || got.Offset != tt.wantOffset {
				t.Fatalf("Normalized() = %+v, want limit=%d offset=%d", got, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestSchemaViolationError(t *testing.T) {
	err := &ErrSchemaViolation{Violations: []FieldViolation{
		{Field: "country", Message: "required field is missing"},
		{Field: "geo.lat", Message: "expected number, but got string"},
	}}
	msg := err.Error()
	if !strings.Contains(msg, "country") || !strings.Contains(msg, "geo.lat") {
		t.Fatalf("error message %q does not name every violated field", msg)
	}
}
