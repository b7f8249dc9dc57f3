package db

import "testing"

func TestVectorRoundTrip(t *testing.T) {
	in := []float32{0.1, -2.5, 0, 1e6}

	out, err := BytesToVector(VectorToBytes(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestBytesToVector_InvalidLength(t *testing.T) {
	if _, err := BytesToVector([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for truncated data")
	}
}
