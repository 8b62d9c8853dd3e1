package imaging

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Size
	}{
		{"square", "128x128", Size{Height: 128, Width: 128}},
		{"height first", "100x50", Size{Height: 100, Width: 50}},
		{"clamps low and high", "0x600", Size{Height: 1, Width: 500}},
		{"negative clamps to one", "-5x10", Size{Height: 1, Width: 10}},
		{"max", "500x500", Size{Height: 500, Width: 500}},
		{"min", "1x1", Size{Height: 1, Width: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.token)
			if err != nil {
				t.Fatalf("ParseSize(%q) failed: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseSize_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "128"},
		{"uppercase separator", "10X10"},
		{"missing width", "10x"},
		{"missing height", "x10"},
		{"two separators", "1x2x3"},
		{"not a number", "axb"},
		{"float", "1.5x2"},
		{"spaces", "10 x 10"},
		{"overflow", "99999999999999999999x1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSize(tt.token)
			if err == nil {
				t.Fatalf("ParseSize(%q) should fail", tt.token)
			}
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("ParseSize(%q) error = %v, want ErrInvalidSize", tt.token, err)
			}
		})
	}
}

func TestSize_String(t *testing.T) {
	s := Size{Height: 20, Width: 30}
	if got := s.String(); got != "20x30" {
		t.Errorf("String() = %s, want 20x30", got)
	}

	back, err := ParseSize(s.String())
	if err != nil || back != s {
		t.Errorf("ParseSize(String()) = %+v, %v", back, err)
	}
}
