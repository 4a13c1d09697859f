package normalize

import "testing"

func TestIsWCALegal_IllegalType(t *testing.T) {
	r := DefaultRules()

	if r.IsWCALegal("Smart Cube", nil) {
		t.Fatalf("Smart Cube type must be illegal even without tags")
	}
}

func TestIsWCALegal_IllegalTag(t *testing.T) {
	r := DefaultRules()

	if r.IsWCALegal("Speed Cube", []string{"3x3", "Bluetooth"}) {
		t.Fatalf("bluetooth tag must be illegal regardless of case")
	}
}

func TestIsWCALegal_Legal(t *testing.T) {
	r := DefaultRules()

	if !r.IsWCALegal("Speed Cube", []string{"3x3", "magnetic"}) {
		t.Fatalf("expected legal")
	}
}

func TestIsWCALegal_TypeMatchIsExact(t *testing.T) {
	r := DefaultRules()

	// Substrings of illegal types do not match; only the exact string does.
	if !r.IsWCALegal("Cube", nil) {
		t.Fatalf("bare Cube type must stay legal")
	}
}
