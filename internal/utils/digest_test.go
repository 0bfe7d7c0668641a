package utils

import "testing"

func TestTruncateDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
		want   string
	}{
		{
			name:   "full_sha256",
			digest: "sha256:4ab6a8c3e0a6a8c3e0a6a8c3e0a6a8c3e0a6a8c3e0a6a8c3e0a6a8c3e0a6a8c3",
			want:   "sha256:4ab6a8c3e0",
		},
		{
			name:   "short_hex_unchanged",
			digest: "sha256:4ab6",
			want:   "sha256:4ab6",
		},
		{
			name:   "no_prefix_truncated",
			digest: "4ab6a8c3e0a6a8c3e0",
			want:   "4ab6a8c3e0",
		},
		{
			name:   "short_plain_unchanged",
			digest: "latest",
			want:   "latest",
		},
		{
			name:   "empty",
			digest: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateDigest(tt.digest); got != tt.want {
				t.Errorf("TruncateDigest(%q) = %q, want %q", tt.digest, got, tt.want)
			}
		})
	}
}
