package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: 0.0,
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: 1.0,
		},
		{
			name: "steel blue",
			rgb:  RGB{R: 70, G: 130, B: 180},
			want: 0.205626,
		},
		{
			name: "light grey",
			rgb:  RGB{R: 240, G: 240, B: 240},
			want: 0.871367,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Luminance(%s) = %f, want %f", tt.rgb.Hex(), got, tt.want)
			}
		})
	}
}

func TestContrastRatioBounds(t *testing.T) {
	// Maximum possible contrast is black on white.
	got := ContrastRatio(RGB{R: 255, G: 255, B: 255}, RGB{R: 0, G: 0, B: 0})
	if math.Abs(got-21.0) > 1e-6 {
		t.Errorf("ContrastRatio(white, black) = %f, want 21.0", got)
	}

	colours := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 70, G: 130, B: 180},
		{R: 240, G: 240, B: 240},
		{R: 105, G: 105, B: 105},
	}
	for _, a := range colours {
		for _, b := range colours {
			r := ContrastRatio(a, b)
			if r < 1.0 || r > 21.0 {
				t.Errorf("ContrastRatio(%s, %s) = %f, outside [1, 21]", a.Hex(), b.Hex(), r)
			}
		}
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	a := RGB{R: 70, G: 130, B: 180}
	b := RGB{R: 240, G: 240, B: 240}

	if got, want := ContrastRatio(a, b), ContrastRatio(b, a); got != want {
		t.Errorf("ContrastRatio not symmetric: %f vs %f", got, want)
	}
	if got := ContrastRatio(a, a); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ContrastRatio(a, a) = %f, want 1.0", got)
	}
}

func TestContrastRatioKnownPairs(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "white on steel blue",
			a:    "#FFFFFF",
			b:    "#4682B4",
			want: 4.107557,
		},
		{
			name: "black on steel blue",
			a:    "#000000",
			b:    "#4682B4",
			want: 5.112528,
		},
		{
			name: "steel blue against light grey",
			a:    "#4682B4",
			b:    "#F0F0F0",
			want: 3.604350,
		},
		{
			name: "dim grey on pale blue",
			a:    "#696969",
			b:    "#BED2E6",
			want: 3.542421,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseHex(tt.a)
			if err != nil {
				t.Fatalf("ParseHex(%s) error = %v", tt.a, err)
			}
			b, err := ParseHex(tt.b)
			if err != nil {
				t.Fatalf("ParseHex(%s) error = %v", tt.b, err)
			}
			got := ContrastRatio(a, b)
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("ContrastRatio(%s, %s) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
