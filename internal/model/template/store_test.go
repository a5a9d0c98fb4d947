package template

import (
	"strings"
	"testing"

	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/analysis/intensity"
	"github.com/normalhq/chatbox/server/internal/analysis/safety"
)

func TestLookupHighIgnoresEmotion(t *testing.T) {
	store := NewMemoryStore(Seed())

	crisis := store.Lookup(intensity.High, emotion.Unknown)
	for _, cat := range append(emotion.Categories, emotion.Unknown) {
		got := store.Lookup(intensity.High, cat)
		if got.Message != crisis.Message {
			t.Fatalf("crisis message differs for category %s", cat)
		}
	}

	if !strings.Contains(crisis.Message, "glad you reached out") {
		t.Fatalf("unexpected crisis message: %q", crisis.Message)
	}
	if strings.Contains(crisis.Message, "everything will be okay") {
		t.Fatal("crisis message must not promise outcomes")
	}

	hasEscalation := false
	for _, action := range crisis.Actions {
		if action.Action == "counselor" || action.Action == "helpline" {
			hasEscalation = true
		}
	}
	if !hasEscalation {
		t.Fatal("crisis template must offer counselor or helpline")
	}
}

func TestLookupIsTotal(t *testing.T) {
	store := NewMemoryStore(Seed())
	levels := []intensity.Level{intensity.Low, intensity.Medium, intensity.High}
	categories := append(append([]emotion.Category{}, emotion.Categories...), emotion.Unknown, emotion.Category("nonsense"))

	for _, level := range levels {
		for _, cat := range categories {
			got := store.Lookup(level, cat)
			if got.Message == "" {
				t.Fatalf("empty template for (%s, %s)", level, cat)
			}
			if len(got.Actions) < 2 || len(got.Actions) > 3 {
				t.Fatalf("(%s, %s): expected 2-3 actions, got %d", level, cat, len(got.Actions))
			}
		}
	}
}

func TestLookupUnlistedCategoryFallsBackToUnknown(t *testing.T) {
	store := NewMemoryStore(Seed())
	got := store.Lookup(intensity.Low, emotion.Category("nonsense"))
	want := store.Lookup(intensity.Low, emotion.Unknown)
	if got.Message != want.Message {
		t.Fatalf("expected unknown fallback, got %q", got.Message)
	}
}

func TestSeedContentPassesSafetyChecks(t *testing.T) {
	table := Seed()
	check := func(level string, tpl Template) {
		t.Helper()
		if result := safety.Validate(tpl.Message); !result.Valid {
			t.Fatalf("%s template %q fails safety validation: %v", level, tpl.Message, result.Violations)
		}
		ids := make([]string, 0, len(tpl.Actions))
		for _, action := range tpl.Actions {
			ids = append(ids, action.Action)
		}
		if !safety.ValidateActions(ids) {
			t.Fatalf("%s template carries invalid actions: %v", level, ids)
		}
	}

	for _, tpl := range table.Low {
		check("low", tpl)
	}
	for _, tpl := range table.Medium {
		check("medium", tpl)
	}
	check("crisis", table.Crisis)
}
