package conv

import (
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint32
	}{
		{"zero", 0, 0},
		{"small", 101, 101},
		{"large", 1 << 30, 1 << 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntToUint32(tt.in); got != tt.want {
				t.Errorf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestIntToUint32_Negative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("IntToUint32(-1) did not panic")
		}
	}()
	IntToUint32(-1)
}
