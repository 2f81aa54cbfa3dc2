package arithcode

import "testing"

func TestEncodeRejectsOutOfRangeSymbol(t *testing.T) {
	cdf, _ := NewCDF([]float64{0, 0.5, 1.0})
	_, err := Encode(Width8, []uint8{0, 2}, cdf, nil)
	if err == nil {
		t.Fatalf("expected precondition error for out-of-range symbol")
	}
	if _, ok := err.(*PreconditionError); !ok {
		t.Fatalf("got %T, want *PreconditionError", err)
	}
}

func TestEncoderIncrementalAPI(t *testing.T) {
	cdf, err := NewCDF([]float64{0, 0.2, 0.7, 0.9, 1.0})
	if err != nil {
		t.Fatalf("NewCDF: %v", err)
	}
	enc, err := NewEncoder(Width8, cdf, nil)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	for _, s := range []int{2, 1, 0, 0, 1, 3} {
		if err := enc.Code(s); err != nil {
			t.Fatalf("Code(%d): %v", s, err)
		}
	}
	if err := enc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	encoded := enc.Bytes()

	decoded, err := Decode[uint8](Width8, encoded, cdf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []uint8{2, 1, 0, 0, 1, 3}
	if len(decoded) != len(want) {
		t.Fatalf("decoded length=%d, want %d", len(decoded), len(want))
	}
	for i := range want {
		if decoded[i] != want[i] {
			t.Fatalf("symbol %d: got %d, want %d", i, decoded[i], want[i])
		}
	}
}

func TestEncoderRejectsWidth16(t *testing.T) {
	cdf, _ := NewCDF([]float64{0, 0.5, 1.0})
	if _, err := NewEncoder(Width16, cdf, nil); err == nil {
		t.Fatalf("expected error constructing encoder at width 16")
	}
}

func TestCodeRejectsEOMIndex(t *testing.T) {
	cdf, _ := NewCDF([]float64{0, 0.5, 1.0})
	enc, err := NewEncoder(Width8, cdf, nil)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	if err := enc.Code(2); err == nil {
		t.Fatalf("expected error coding the reserved EOM index directly")
	}
}

func TestEncodeEmptyMessage(t *testing.T) {
	cdf, _ := NewCDF([]float64{0, 0.5, 1.0})
	encoded, err := Encode[uint8](Width8, nil, cdf, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode[uint8](Width8, encoded, cdf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("decoded=%v, want empty", decoded)
	}
}
