package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cents
		wantErr error
	}{
		{name: "whole amount", input: "30", want: 3000},
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "one decimal", input: "9.5", want: 950},
		{name: "trailing zero beyond cents", input: "12.340", want: 1234},
		{name: "single cent", input: "0.01", want: 1},
		{name: "sub-cent precision", input: "12.345", wantErr: ErrInvalidAmount},
		{name: "zero", input: "0", wantErr: ErrNegativeAmount},
		{name: "negative", input: "-4.20", wantErr: ErrNegativeAmount},
		{name: "garbage", input: "ten dollars", wantErr: ErrInvalidAmount},
		{name: "empty", input: "", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		cents Cents
		want  string
	}{
		{cents: 1050, want: "10.50"},
		{cents: 1, want: "0.01"},
		{cents: 0, want: "0.00"},
		{cents: -333, want: "-3.33"},
		{cents: 100000, want: "1000.00"},
	}

	for _, tt := range tests {
		if got := tt.cents.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if got := Cents(-250).Abs(); got != 250 {
		t.Errorf("Abs(-250) = %d, want 250", got)
	}
	if got := Cents(250).Abs(); got != 250 {
		t.Errorf("Abs(250) = %d, want 250", got)
	}
}
