package safety

import (
	"strings"
	"testing"
)

func TestValidateCleanMessage(t *testing.T) {
	result := Validate("It sounds like a lot is going on. Would a short breathing exercise help?")
	if !result.Valid {
		t.Fatalf("expected valid, got violations: %v", result.Violations)
	}
	if len(result.Violations) != 0 {
		t.Fatalf("expected no violations, got %d", len(result.Violations))
	}
}

func TestValidateFlagsDiagnosis(t *testing.T) {
	result := Validate("I think you have depression and should get it checked.")
	if result.Valid {
		t.Fatal("expected diagnostic phrase to be flagged")
	}
	if result.Violations[0].Category != CategoryDiagnosis {
		t.Fatalf("expected diagnosis category, got %s", result.Violations[0].Category)
	}
}

func TestValidateFlagsMedicalAdvice(t *testing.T) {
	result := Validate("Maybe you should take medication for this.")
	if result.Valid {
		t.Fatal("expected medical advice to be flagged")
	}
}

func TestValidateFlagsPromises(t *testing.T) {
	result := Validate("Don't worry, everything will be okay soon.")
	if result.Valid {
		t.Fatal("expected outcome promise to be flagged")
	}
	if result.Violations[0].Category != CategoryPromises {
		t.Fatalf("expected promises category, got %s", result.Violations[0].Category)
	}
}

func TestValidateFlagsInvalidation(t *testing.T) {
	result := Validate("Honestly, others have it worse.")
	if result.Valid {
		t.Fatal("expected invalidation to be flagged")
	}
}

func TestValidateFlagsOverlongMessage(t *testing.T) {
	result := Validate(strings.Repeat("a", MaxResponseLength+1))
	if result.Valid {
		t.Fatal("expected length violation")
	}
	if result.Violations[0].Category != CategoryLength {
		t.Fatalf("expected length category, got %s", result.Violations[0].Category)
	}
}

func TestValidateCollectsMultipleViolations(t *testing.T) {
	result := Validate("You're overreacting, everything will be fine, I promise you.")
	if result.Valid {
		t.Fatal("expected violations")
	}
	if len(result.Violations) < 2 {
		t.Fatalf("expected multiple violations, got %d", len(result.Violations))
	}
}

func TestValidateActions(t *testing.T) {
	cases := []struct {
		name    string
		actions []string
		want    bool
	}{
		{"typical", []string{"breathing", "chat"}, true},
		{"single", []string{"counselor"}, true},
		{"five", []string{"breathing", "grounding", "game", "chat", "self_care"}, true},
		{"empty", nil, false},
		{"too many", []string{"breathing", "grounding", "game", "chat", "sounds", "break"}, false},
		{"unlisted id", []string{"breathing", "prescribe"}, false},
	}
	for _, tc := range cases {
		if got := ValidateActions(tc.actions); got != tc.want {
			t.Fatalf("%s: ValidateActions(%v) = %v, want %v", tc.name, tc.actions, got, tc.want)
		}
	}
}
