package testutil

import "testing"

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint([]byte("hello"))
	b := Fingerprint([]byte("hello"))
	if a != b {
		t.Fatalf("fingerprint not stable: %s != %s", a, b)
	}
	if Fingerprint([]byte("hello")) == Fingerprint([]byte("world")) {
		t.Fatalf("distinct inputs produced the same fingerprint")
	}
}

func TestDiffEmptyForEqualValues(t *testing.T) {
	type point struct{ X, Y int }
	if d := Diff(point{1, 2}, point{1, 2}); d != "" {
		t.Fatalf("expected no diff, got: %s", d)
	}
	if d := Diff(point{1, 2}, point{1, 3}); d == "" {
		t.Fatalf("expected a diff for unequal values")
	}
}
