package intensity

import "strings"

// Level is the assessed emotional intensity of a message.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// crisisKeywords force High on any match, before any counting. A crisis
// phrase dominates regardless of what else the message contains.
var crisisKeywords = []string{
	"hopeless", "can't go on", "give up", "giving up", "end it", "suicide", "kill myself",
	"hurt myself", "self harm", "self-harm", "die", "dying", "death",
	"no point", "pointless", "worthless", "better off dead", "can't take it",
}

var highKeywords = []string{
	"panic", "panicking", "can't breathe", "breaking down", "falling apart",
	"collapsing", "can't handle", "too much", "unbearable", "overwhelming",
	"drowning", "suffocating", "losing control", "going crazy",
}

var mediumKeywords = []string{
	"struggling", "difficult", "hard", "exhausted", "drained", "worried",
	"anxious", "stressed", "overwhelmed", "tired", "can't focus",
	"can't sleep", "constantly", "always", "every day", "all the time",
}

// Assess maps a message to an intensity level via tiered keyword sets.
// The tiers are checked in strict priority: any crisis phrase returns
// High immediately; two or more high-tier hits mean High and exactly one
// means Medium; two or more medium-tier hits mean Medium and exactly one
// means Low. Escalating too eagerly is acceptable here, missing crisis
// language is not.
func Assess(text string) Level {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Low
	}

	for _, keyword := range crisisKeywords {
		if strings.Contains(normalized, keyword) {
			return High
		}
	}

	highCount := countMatches(normalized, highKeywords)
	if highCount >= 2 {
		return High
	}

	mediumCount := countMatches(normalized, mediumKeywords)

	if highCount == 1 {
		return Medium
	}
	if mediumCount >= 2 {
		return Medium
	}

	return Low
}

func countMatches(normalized string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			count++
		}
	}
	return count
}
