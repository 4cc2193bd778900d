package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"junk", false},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("OPREG_DEBUG_TEST", tt.val)
			if got := boolEnv("OPREG_DEBUG_TEST"); got != tt.want {
				t.Errorf("boolEnv(%q) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
