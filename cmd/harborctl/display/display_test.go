package display

import "testing"

func TestExtraAttrsSummary(t *testing.T) {
	attrs := map[string]any{
		"os":           "linux",
		"architecture": "amd64",
		"config": map[string]any{
			"labels": map[string]any{"maintainer": "team"},
		},
	}

	tests := []struct {
		name     string
		maxDepth int
		compact  bool
		want     string
	}{
		{
			name:     "depth_zero_hides",
			maxDepth: 0,
			want:     "",
		},
		{
			name:     "depth_one_elides_nested",
			maxDepth: 1,
			want:     "architecture=amd64, config=..., os=linux",
		},
		{
			name:     "depth_two_opens_one_level",
			maxDepth: 2,
			want:     "architecture=amd64, config={labels=...}, os=linux",
		},
		{
			name:     "depth_three_full",
			maxDepth: 3,
			want:     "architecture=amd64, config={labels={maintainer=team}}, os=linux",
		},
		{
			name:     "compact_drops_spaces",
			maxDepth: 1,
			compact:  true,
			want:     "architecture=amd64,config=...,os=linux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtraAttrsSummary(attrs, tt.maxDepth, tt.compact)
			if got != tt.want {
				t.Errorf("ExtraAttrsSummary depth=%d = %q, want %q", tt.maxDepth, got, tt.want)
			}
		})
	}
}

func TestExtraAttrsSummaryEmpty(t *testing.T) {
	if got := ExtraAttrsSummary(nil, 3, false); got != "" {
		t.Errorf("nil attrs = %q, want empty", got)
	}
	if got := ExtraAttrsSummary(map[string]any{}, 3, false); got != "" {
		t.Errorf("empty attrs = %q, want empty", got)
	}
}

func TestRenderAttrScalarsAndLists(t *testing.T) {
	attrs := map[string]any{
		"layers": []any{"a", "b"},
		"size":   float64(42),
		"null":   nil,
	}
	got := ExtraAttrsSummary(attrs, 2, false)
	want := "layers=[a, b], null=null, size=42"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
