package canvas

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func paintEqual(a, b Paint) bool {
	const eps = 1e-3
	return scalar.EqualWithinAbs(a.R, b.R, eps) && scalar.EqualWithinAbs(a.G, b.G, eps) &&
		scalar.EqualWithinAbs(a.B, b.B, eps) && scalar.EqualWithinAbs(a.A, b.A, eps)
}

func TestParsePaint(t *testing.T) {
	tests := []struct {
		in   string
		want Paint
	}{
		{"#FFFFFF", White},
		{"#fff", White},
		{"#FF0000", Paint{1, 0, 0, 1}},
		{"  #000000 ", Black},
		{"rgba(255, 165, 0, 0.2)", Paint{1, 165.0 / 255, 0, 0.2}},
		{"rgb(0,0,255)", Paint{0, 0, 1, 1}},
		{"RGBA(255,255,255,0.08)", Paint{1, 1, 1, 0.08}},
		{"white", White},
		{"transparent", Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePaint(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !paintEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePaintInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgba(1,2,3)", "rgb(a,b,c)", "no-such-color", "rgb(1,2,3"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParsePaint(in); !errors.Is(err, ErrInvalidPaint) {
				t.Errorf("expected ErrInvalidPaint, got %v", err)
			}
		})
	}
}

func TestParsePaintClampsChannels(t *testing.T) {
	got, err := ParsePaint("rgba(300, -5, 128, 2)")
	if err != nil {
		t.Fatal(err)
	}
	if got.R != 1 || got.G != 0 || got.A != 1 {
		t.Errorf("channels not clamped: %+v", got)
	}
}

func TestParsePaintRejectsNonFinite(t *testing.T) {
	for _, in := range []string{"rgb(nan, 0, 0)", "rgb(0, inf, 0)", "rgba(0, 0, 0, -Inf)", "rgba(1, 2, 3, NaN)"} {
		t.Run(in, func(t *testing.T) {
			if p, err := ParsePaint(in); !errors.Is(err, ErrInvalidPaint) {
				t.Errorf("ParsePaint(%q) = %+v, %v; want ErrInvalidPaint", in, p, err)
			}
		})
	}
}

func TestGradientAt(t *testing.T) {
	g := Gradient{
		{0, MustPaint("#FFF700")},
		{0.7, MustPaint("#FFA500")},
		{1, MustPaint("rgba(255, 165, 0, 0.2)")},
	}

	if got := g.At(0); !paintEqual(got, MustPaint("#FFF700")) {
		t.Errorf("At(0) = %+v", got)
	}
	if got := g.At(0.7); !paintEqual(got, MustPaint("#FFA500")) {
		t.Errorf("At(0.7) = %+v", got)
	}
	if got := g.At(1); !scalar.EqualWithinAbs(got.A, 0.2, 1e-9) {
		t.Errorf("At(1) alpha = %v", got.A)
	}
	mid := g.At(0.85)
	if mid.A >= 1 || mid.A <= 0.2 {
		t.Errorf("alpha not interpolated between stops: %v", mid.A)
	}
	if got := g.At(2); !scalar.EqualWithinAbs(got.A, 0.2, 1e-9) {
		t.Errorf("past last stop should clamp, got alpha %v", got.A)
	}
	if got := (Gradient{}).At(0.5); got != Transparent {
		t.Errorf("empty gradient = %+v", got)
	}
}

func TestRGB255(t *testing.T) {
	r, g, b := MustPaint("#8C7853").RGB255()
	if r != 0x8C || g != 0x78 || b != 0x53 {
		t.Errorf("RGB255 = %02x%02x%02x", r, g, b)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := White.WithAlpha(0.5).WithAlpha(0.5); got.A != 0.25 {
		t.Errorf("WithAlpha composed = %v", got.A)
	}
}
