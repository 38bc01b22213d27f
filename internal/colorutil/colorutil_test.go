package colorutil

import "testing"

func TestDarken(t *testing.T) {
	tests := []struct {
		name   string
		in     RGB
		factor float64
		want   RGB
	}{
		{"full intensity", RGB{200, 100, 50}, 1.0, RGB{200, 100, 50}},
		{"half intensity", RGB{200, 100, 50}, 0.5, RGB{100, 50, 25}},
		{"zero intensity", White, 0.0, Black},
		{"negative clamps to black", Red, -2.5, Black},
		{"above one clamps to input", RGB{10, 20, 30}, 3.0, RGB{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Darken(tt.in, tt.factor)
			if got != tt.want {
				t.Errorf("Darken(%v, %v) = %v, want %v", tt.in, tt.factor, got, tt.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	if got := Invert(White); got != Black {
		t.Errorf("Invert(White) = %v, want Black", got)
	}
	if got := Invert(RGB{10, 20, 30}); got != (RGB{245, 235, 225}) {
		t.Errorf("Invert = %v, want {245 235 225}", got)
	}
	if got := Invert(Invert(Purple)); got != Purple {
		t.Errorf("double Invert = %v, want %v", got, Purple)
	}
}
