package buildinfo

import "testing"

func TestShort(t *testing.T) {
	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "none", "dev (none)"},
		{"v1.0.0", "3f2a9c1d8e7b", "v1.0.0 (3f2a9c1)"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() = %q, want %q", got, tt.want)
		}
	}
	Version, Commit = "dev", "none"
}
