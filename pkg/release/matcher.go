package release

import (
	"regexp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

var digitsRe = regexp.MustCompile(`\b\d+\b`)

// MatchConfidence buckets a similarity score.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // below 0.70
	ConfidenceLow                           // 0.70 and up
	ConfidenceMedium                        // 0.85 and up
	ConfidenceHigh                          // 0.95 and up
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ConfidenceFor maps a similarity score to its bucket.
func ConfidenceFor(score float64) MatchConfidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// MatchResult is the best candidate for a title.
type MatchResult struct {
	Title      string
	Score      float64
	Confidence MatchConfidence
}

// Similarity scores two titles in [0,1] using Jaro-Winkler over their
// CleanTitle forms. Sequel numbers that agree raise the score and numbers
// that disagree lower it, so "Rocky III" prefers "Rocky 3" over "Rocky".
func Similarity(a, b string) float64 {
	ca, cb := CleanTitle(a), CleanTitle(b)
	if ca == "" || cb == "" {
		return 0
	}
	score := float64(edlib.JaroWinklerSimilarity(ca, cb))
	return weighNumbers(score, digitsRe.FindAllString(ca, -1), digitsRe.FindAllString(cb, -1))
}

// Contains reports whether every word of query appears in title after
// cleaning, in any order. It is the exact half of a fuzzy search.
func Contains(title, query string) bool {
	words := strings.Fields(CleanTitle(title))
	for _, q := range strings.Fields(CleanTitle(query)) {
		if !slices.ContainsFunc(words, func(w string) bool { return strings.HasPrefix(w, q) }) {
			return false
		}
	}
	return true
}

// MatchTitle picks the candidate most similar to title. Below low
// confidence the returned Title is empty.
func MatchTitle(title string, candidates []string) MatchResult {
	var best MatchResult
	for _, c := range candidates {
		if score := Similarity(title, c); score > best.Score {
			best = MatchResult{Title: c, Score: score}
		}
	}
	best.Confidence = ConfidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Title = ""
	}
	return best
}

func weighNumbers(score float64, want, got []string) float64 {
	if len(want) == 0 {
		return score
	}
	if len(got) == 0 {
		return score * 0.85
	}
	for _, n := range want {
		if slices.Contains(got, n) {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
