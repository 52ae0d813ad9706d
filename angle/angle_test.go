package angle

import (
	"math"
	"testing"
)

func TestMod(t *testing.T) {

	// The zero divisor is a defined degenerate case, not an error.
	if m := Mod(12.75, 0.0); m != 12.75 {
		t.Fatalf("Mod(12.75, 0)\nhave %v\nwant 12.75", m)
	}

	// Regression for the clamp-to-zero branch: the raw formula evaluates to exactly y here.
	if m := Mod(-1e-16, 360.0); m != 0 {
		t.Fatalf("Mod(-1e-16, 360)\nhave %v\nwant 0", m)
	}
	if m := Mod(1e-16, -360.0); m != 0 {
		t.Fatalf("Mod(1e-16, -360)\nhave %v\nwant 0", m)
	}

	// Regression for the tiny negative residual: the raw formula gives m = -1.421e-14.
	if m := Mod(106.81415022205296, 2*math.Pi); m < 0 || m >= 2*math.Pi {
		t.Fatalf("Mod(106.81415022205296, 2π) = %v, outside [0, 2π)", m)
	}
	if m := Mod(-106.81415022205296, -2*math.Pi); m > 0 || m <= -2*math.Pi {
		t.Fatalf("Mod(-106.81415022205296, -2π) = %v, outside (-2π, 0]", m)
	}

	if m := Mod(7.5, 2.0); math.Abs(m-1.5) > 1e-12 {
		t.Fatalf("Mod(7.5, 2)\nhave %v\nwant 1.5", m)
	}
	if m := Mod(-7.5, 2.0); math.Abs(m-0.5) > 1e-12 {
		t.Fatalf("Mod(-7.5, 2)\nhave %v\nwant 0.5", m)
	}
	if m := Mod(7.5, -2.0); math.Abs(m-(-0.5)) > 1e-12 {
		t.Fatalf("Mod(7.5, -2)\nhave %v\nwant -0.5", m)
	}

}

func TestModRange(t *testing.T) {

	for i := -1000; i <= 1000; i++ {

		x := float64(i) * 0.173

		if m := Mod(x, 360.0); m < 0 || m >= 360 {
			t.Fatalf("Mod(%v, 360) = %v, outside [0, 360)", x, m)
		}
		if m := Mod(x, -360.0); m > 0 || m <= -360 {
			t.Fatalf("Mod(%v, -360) = %v, outside (-360, 0]", x, m)
		}

	}

}

func TestModFloat32(t *testing.T) {

	if m := Mod(float32(7.5), float32(2)); math.Abs(float64(m)-1.5) > 1e-6 {
		t.Fatalf("Mod(float32(7.5), 2)\nhave %v\nwant 1.5", m)
	}
	if m := Mod(float32(-1e-8), float32(360)); m < 0 || m >= 360 {
		t.Fatalf("Mod(float32(-1e-8), 360) = %v, outside [0, 360)", m)
	}

}

func TestWrapAngle(t *testing.T) {

	for i := -1000; i <= 1000; i++ {

		a := float64(i) * 0.317

		w := WrapAngle(a, -180.0, 180.0)
		if w < -180 || w >= 180 {
			t.Fatalf("WrapAngle(%v, -180, 180) = %v, outside [-180, 180)", a, w)
		}

		// The wrapped angle must be congruent to the input modulo the interval width.
		if d := math.Abs(math.Remainder(w-a, 360)); d > 1e-9 {
			t.Fatalf("WrapAngle(%v, -180, 180) = %v, not congruent modulo 360 (delta %v)", a, w, d)
		}

	}

}

func TestWrapPosNegPI(t *testing.T) {

	for i := -1000; i <= 1000; i++ {

		a := float64(i) * 0.0831

		w := WrapPosNegPI(a)
		if w < -math.Pi || w >= math.Pi {
			t.Fatalf("WrapPosNegPI(%v) = %v, outside [-π, π)", a, w)
		}
		if d := math.Abs(math.Remainder(w-a, 2*math.Pi)); d > 1e-9 {
			t.Fatalf("WrapPosNegPI(%v) = %v, not congruent modulo 2π (delta %v)", a, w, d)
		}

	}

	if w := WrapPosNegPI(math.Pi); w != -math.Pi {
		t.Fatalf("WrapPosNegPI(π)\nhave %v\nwant -π", w)
	}

}

func TestWrapTwoPI(t *testing.T) {

	for i := -1000; i <= 1000; i++ {

		a := float64(i) * 0.0831

		w := WrapTwoPI(a)
		if w < 0 || w >= 2*math.Pi {
			t.Fatalf("WrapTwoPI(%v) = %v, outside [0, 2π)", a, w)
		}
		if d := math.Abs(math.Remainder(w-a, 2*math.Pi)); d > 1e-9 {
			t.Fatalf("WrapTwoPI(%v) = %v, not congruent modulo 2π (delta %v)", a, w, d)
		}

	}

	if w := WrapTwoPI(106.81415022205296); w < 0 || w >= 2*math.Pi {
		t.Fatalf("WrapTwoPI(106.81415022205296) = %v, outside [0, 2π)", w)
	}

}

func BenchmarkMod(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		Mod(float64(i)*0.173, 2*math.Pi)
	}

}
