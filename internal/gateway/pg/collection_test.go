package pg

import (
	"testing"
	"time"
)

func TestZeroCreatedAt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"ausente", nil, true},
		{"vacío", "", true},
		{"no string", 1234567890, true},
		{"basura", "ayer a la tarde", true},
		{"cero serializado", time.Time{}.Format(time.RFC3339Nano), true},
		{"fecha real", "2026-03-14T10:30:00Z", false},
		{"con nanos", "2026-03-14T10:30:00.123456789Z", false},
	}
	for _, tc := range cases {
		if got := zeroCreatedAt(tc.in); got != tc.want {
			t.Fatalf("%s: zeroCreatedAt(%v) = %v, esperado %v", tc.name, tc.in, got, tc.want)
		}
	}
}
