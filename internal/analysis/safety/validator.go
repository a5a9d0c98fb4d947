package safety

import "regexp"

// MaxResponseLength is the character budget for a generated reply.
// Brevity is part of the safety posture: long replies drift into advice.
const MaxResponseLength = 300

// Violation categories.
const (
	CategoryDiagnosis     = "diagnosis"
	CategoryMedicalAdvice = "medical_advice"
	CategoryPromises      = "promises"
	CategoryInvalidation  = "invalidation"
	CategoryLength        = "length"
)

// Violation records one prohibited pattern found in a candidate reply.
type Violation struct {
	Category string `json:"category"`
	Match    string `json:"match"`
}

// Result is the outcome of validating one candidate reply.
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

type patternGroup struct {
	category string
	patterns []*regexp.Regexp
}

// prohibitedPatterns is data, not control flow: category -> ordered patterns.
var prohibitedPatterns = []patternGroup{
	{CategoryDiagnosis, []*regexp.Regexp{
		regexp.MustCompile(`(?i)you (have|are|might have|could have|probably have) (depression|anxiety|adhd|ptsd|ocd|bipolar)`),
		regexp.MustCompile(`(?i)this (is|sounds like|could be) (depression|anxiety|adhd|ptsd|ocd|bipolar)`),
		regexp.MustCompile(`(?i)you('re| are) (depressed|anxious|manic)`),
	}},
	{CategoryMedicalAdvice, []*regexp.Regexp{
		regexp.MustCompile(`(?i)you should (take|try|use) (medication|pills|drugs|antidepressants)`),
		regexp.MustCompile(`(?i)i (recommend|suggest|advise) (medication|therapy|treatment)`),
		regexp.MustCompile(`(?i)(stop|start|change) your medication`),
	}},
	{CategoryPromises, []*regexp.Regexp{
		regexp.MustCompile(`(?i)everything will be (okay|fine|alright|better)`),
		regexp.MustCompile(`(?i)you('ll| will) (definitely|certainly) (feel better|be okay|get better)`),
		regexp.MustCompile(`(?i)i (promise|guarantee) (you|that|it)`),
		regexp.MustCompile(`(?i)this will (definitely|certainly) (work|help)`),
	}},
	{CategoryInvalidation, []*regexp.Regexp{
		regexp.MustCompile(`(?i)you('re| are) (overreacting|being dramatic|too sensitive)`),
		regexp.MustCompile(`(?i)(just|simply) (get over it|move on|stop worrying)`),
		regexp.MustCompile(`(?i)it('s| is) not that bad`),
		regexp.MustCompile(`(?i)others have it worse`),
	}},
}

// validActions is the whitelist of suggestible action identifiers.
var validActions = map[string]bool{
	"breathing":       true,
	"grounding":       true,
	"game":            true,
	"chat":            true,
	"counselor":       true,
	"helpline":        true,
	"peer_support":    true,
	"study_tips":      true,
	"sleep_tips":      true,
	"break":           true,
	"sounds":          true,
	"social_tips":     true,
	"sleep_resources": true,
	"peer_connect":    true,
	"self_care":       true,
}

// Validate scans a candidate reply against the prohibited-pattern table
// and the length budget. It is a pure check; substituting safe content on
// failure is the caller's job.
func Validate(message string) Result {
	var violations []Violation

	for _, group := range prohibitedPatterns {
		for _, pattern := range group.patterns {
			if match := pattern.FindString(message); match != "" {
				violations = append(violations, Violation{
					Category: group.category,
					Match:    match,
				})
			}
		}
	}

	if len(message) > MaxResponseLength {
		violations = append(violations, Violation{
			Category: CategoryLength,
			Match:    "response too long",
		})
	}

	return Result{Valid: len(violations) == 0, Violations: violations}
}

// ValidateActions reports whether an action list is usable: between one
// and five entries, all drawn from the whitelist.
func ValidateActions(actions []string) bool {
	if len(actions) < 1 || len(actions) > 5 {
		return false
	}
	for _, action := range actions {
		if !validActions[action] {
			return false
		}
	}
	return true
}
