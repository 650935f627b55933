package textmatch

import "testing"

func TestEqual(t *testing.T) {
	if !Equal("FC Barcelona", "fc   barcelona") {
		t.Fatalf("expected case and whitespace insensitive equality")
	}
	if Equal("FC Barcelona", "Real Madrid") {
		t.Fatalf("distinct names must not be equal")
	}
	if Equal("", "") {
		t.Fatalf("empty names must not match")
	}
}

func TestContains(t *testing.T) {
	if !Contains("Barcelona", "FC Barcelona") {
		t.Fatalf("expected substring match in either direction")
	}
	if !Contains("FC Barcelona", "barcelona") {
		t.Fatalf("expected substring match to ignore case")
	}
	if Contains("Arsenal", "Chelsea") {
		t.Fatalf("unrelated names must not match")
	}
	if Contains("", "Arsenal") {
		t.Fatalf("empty name must not match")
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio("Arsenal", "Arsenal"); got != 1 {
		t.Fatalf("identical names: got %v, want 1", got)
	}

	// "Arsenal" vs "Arsenol": one substitution over seven runes.
	got := Ratio("Arsenal", "Arsenol")
	want := 1 - 1.0/7.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("one-edit ratio: got %v, want %v", got, want)
	}

	if got := Ratio("Arsenal", "Real Sociedad"); got > 0.5 {
		t.Fatalf("dissimilar names scored too high: %v", got)
	}
	if got := Ratio("", ""); got != 0 {
		t.Fatalf("empty names: got %v, want 0", got)
	}
}
