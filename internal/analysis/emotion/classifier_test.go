package emotion

import "testing"

func TestClassifyStress(t *testing.T) {
	got := Classify("I feel a bit overwhelmed")
	if got != Stress {
		t.Fatalf("expected stress, got %s", got)
	}
}

func TestClassifyEmptyReturnsUnknown(t *testing.T) {
	if got := Classify(""); got != Unknown {
		t.Fatalf("expected unknown for empty input, got %s", got)
	}
	if got := Classify("   "); got != Unknown {
		t.Fatalf("expected unknown for whitespace input, got %s", got)
	}
}

func TestClassifyNoMatchReturnsUnknown(t *testing.T) {
	if got := Classify("the weather is mild today"); got != Unknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("SO ANXIOUS about everything"); got != Anxiety {
		t.Fatalf("expected anxiety, got %s", got)
	}
}

func TestClassifyPartialWordMatches(t *testing.T) {
	// Substring matching is deliberate: "tired" inside "retired" counts.
	if got := Classify("my retired neighbour"); got != Stress {
		t.Fatalf("expected stress via partial match, got %s", got)
	}
}

func TestClassifyHighestScoreWins(t *testing.T) {
	// Two academic hits against one sadness hit.
	got := Classify("this exam deadline makes me sad")
	if got != Academic {
		t.Fatalf("expected academic, got %s", got)
	}
}

func TestClassifyTieBreakUsesTableOrder(t *testing.T) {
	// One anxiety hit and one sadness hit; anxiety comes first in the table.
	got := Classify("nervous and tears")
	if got != Anxiety {
		t.Fatalf("expected anxiety on tie, got %s", got)
	}
}

func TestClassifyAlwaysInClosedSet(t *testing.T) {
	inputs := []string{"", "lonely", "exam panic tears", "sleep friend", "!!!"}
	valid := map[Category]bool{Unknown: true}
	for _, c := range Categories {
		valid[c] = true
	}
	for _, in := range inputs {
		if got := Classify(in); !valid[got] {
			t.Fatalf("classification %q outside closed set for input %q", got, in)
		}
	}
}
