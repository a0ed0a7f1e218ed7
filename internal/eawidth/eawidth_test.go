package eawidth

import "testing"

func TestIsNarrow(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'1', true},
		{' ', true},
		{'中', false},
		{'ア', false},
		{'Ａ', false}, // fullwidth Latin
		{'ｱ', false}, // halfwidth katakana
		{'é', false}, // ambiguous
	}
	for _, tt := range tests {
		if got := IsNarrow(tt.r); got != tt.want {
			t.Errorf("IsNarrow(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFullWidth(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"中環", true},
		{"香港站", true},
		{"M站", false},
		{"Central", false},
		{"旺角 ", false},
	}
	for _, tt := range tests {
		if got := FullWidth(tt.s); got != tt.want {
			t.Errorf("FullWidth(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestRuneCount(t *testing.T) {
	if got := RuneCount("中環"); got != 2 {
		t.Errorf("RuneCount = %d, want 2", got)
	}
}
