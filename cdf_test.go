package arithcode

import "testing"

func TestNewCDFValidation(t *testing.T) {
	cases := []struct {
		name string
		p    []float64
		ok   bool
	}{
		{"valid", []float64{0, 0.2, 0.7, 0.9, 1.0}, true},
		{"too short", []float64{0}, false},
		{"nonzero start", []float64{0.1, 1.0}, false},
		{"non-one end", []float64{0, 0.9}, false},
		{"not monotone", []float64{0, 0.5, 0.3, 1.0}, false},
		{"single symbol", []float64{0, 1.0}, true},
	}
	for _, c := range cases {
		_, err := NewCDF(c.p)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected error, got none", c.name)
		}
	}
}

func TestCDFNSymAndAt(t *testing.T) {
	c, err := NewCDF([]float64{0, 0.2, 0.7, 0.9, 1.0})
	if err != nil {
		t.Fatalf("NewCDF: %v", err)
	}
	if c.NSym() != 4 {
		t.Fatalf("NSym()=%d, want 4", c.NSym())
	}
	want := []float64{0, 0.2, 0.7, 0.9, 1.0}
	for i, v := range want {
		if c.At(i) != v {
			t.Fatalf("At(%d)=%v, want %v", i, c.At(i), v)
		}
	}
}

func TestCDFRoundTripSerialization(t *testing.T) {
	c, err := NewCDF([]float64{0, 0.2, 0.7, 0.9, 1.0})
	if err != nil {
		t.Fatalf("NewCDF: %v", err)
	}
	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var c2 CDF
	if err := c2.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if c2.NSym() != c.NSym() {
		t.Fatalf("NSym mismatch: %d vs %d", c2.NSym(), c.NSym())
	}
	for i := 0; i <= c.NSym(); i++ {
		if c2.At(i) != c.At(i) {
			t.Fatalf("At(%d) mismatch: %v vs %v", i, c2.At(i), c.At(i))
		}
	}
}

func TestCDFBadVersion(t *testing.T) {
	c, _ := NewCDF([]float64{0, 0.5, 1.0})
	data, _ := c.MarshalBinary()
	data[4] = 0xFF // corrupt the version field
	var c2 CDF
	if err := c2.UnmarshalBinary(data); err != ErrBadCDFVersion {
		t.Fatalf("UnmarshalBinary on bad version: got %v, want ErrBadCDFVersion", err)
	}
}

func TestBuildCDF(t *testing.T) {
	symbols := []uint32{0, 0, 1, 1, 1, 1, 2}
	c, err := BuildCDF(symbols)
	if err != nil {
		t.Fatalf("BuildCDF: %v", err)
	}
	if c.NSym() != 3 {
		t.Fatalf("NSym()=%d, want 3", c.NSym())
	}
	want := []float64{0, 2.0 / 7, 6.0 / 7, 1.0}
	for i, v := range want {
		if diff := c.At(i) - v; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("At(%d)=%v, want %v", i, c.At(i), v)
		}
	}
}

func TestBuildCDFEmpty(t *testing.T) {
	if _, err := BuildCDF(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestUniformCDF(t *testing.T) {
	c := uniformCDF(94)
	if c.NSym() != 94 {
		t.Fatalf("NSym()=%d, want 94", c.NSym())
	}
	if c.At(0) != 0 || c.At(94) != 1 {
		t.Fatalf("uniformCDF endpoints wrong: %v .. %v", c.At(0), c.At(94))
	}
}
