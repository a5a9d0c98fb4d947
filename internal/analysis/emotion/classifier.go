package emotion

import "strings"

// Category is the emotion bucket a user message is filed under.
type Category string

const (
	Stress     Category = "stress"
	Anxiety    Category = "anxiety"
	Sadness    Category = "sadness"
	Academic   Category = "academic"
	Loneliness Category = "loneliness"
	Sleep      Category = "sleep"
	Social     Category = "social"
	Unknown    Category = "unknown"
)

// Categories lists every classifiable bucket in classification order.
// Ties on the max score resolve to the earliest entry here.
var Categories = []Category{Stress, Anxiety, Sadness, Academic, Loneliness, Sleep, Social}

type bucket struct {
	category Category
	keywords []string
}

// keywordBuckets is ordered; the slice order is the tie-break order.
var keywordBuckets = []bucket{
	{Stress, []string{
		"overwhelm", "stressed", "pressure", "too much", "burden", "heavy",
		"exhausted", "tired", "drained", "burnt out", "burnout", "overload",
	}},
	{Anxiety, []string{
		"anxious", "worry", "worried", "nervous", "panic", "scared", "afraid",
		"fear", "tense", "restless", "uneasy", "on edge",
	}},
	{Sadness, []string{
		"sad", "down", "depressed", "hopeless", "empty", "numb", "crying",
		"tears", "hurt", "pain", "miserable", "unhappy", "low",
	}},
	{Academic, []string{
		"exam", "test", "assignment", "study", "studies", "grade", "fail",
		"failing", "course", "class", "homework", "project", "deadline",
		"focus", "concentrate", "concentration",
	}},
	{Loneliness, []string{
		"lonely", "alone", "isolated", "nobody", "no one", "friendless",
		"disconnected", "left out", "excluded", "abandoned",
	}},
	{Sleep, []string{
		"sleep", "insomnia", "can't sleep", "tired", "exhausted", "awake",
		"rest", "fatigue", "sleepless",
	}},
	{Social, []string{
		"friend", "friends", "relationship", "people", "social", "talk",
		"talking", "conversation", "connect", "connection",
	}},
}

// Classify maps a message to the single best-matching category by keyword
// frequency. Matching is case-insensitive substring containment, not
// word-boundary aware. A strictly highest score wins; with no matches at
// all the result is Unknown.
func Classify(text string) Category {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Unknown
	}

	best := Unknown
	bestScore := 0
	for _, b := range keywordBuckets {
		score := 0
		for _, word := range b.keywords {
			if strings.Contains(normalized, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = b.category
		}
	}

	return best
}
