package taskpool

import (
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	long := strings.Repeat("x", MaxNameLen+10)

	tests := []struct {
		name     string
		in       string
		fallback string
		want     string
	}{
		{name: "plain name kept", in: "compress-chunk-7", fallback: DefaultTaskName, want: "compress-chunk-7"},
		{name: "empty uses fallback", in: "", fallback: DefaultTaskName, want: DefaultTaskName},
		{name: "empty uses custom fallback", in: "", fallback: "job", want: "job"},
		{name: "exact bound kept", in: strings.Repeat("y", MaxNameLen), fallback: DefaultTaskName, want: strings.Repeat("y", MaxNameLen)},
		{name: "over bound truncated", in: long, fallback: DefaultTaskName, want: long[:MaxNameLen]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeName(tc.in, tc.fallback); got != tc.want {
				t.Fatalf("normalizeName(%q, %q) = %q; want %q", tc.in, tc.fallback, got, tc.want)
			}
		})
	}
}
