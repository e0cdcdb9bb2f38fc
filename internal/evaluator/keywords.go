package evaluator

import (
	"regexp"
	"strings"
	"sync"
)

var keywordPatterns sync.Map // map[string]*regexp.Regexp

// keywordPattern returns the whole-word matcher for kw. Underscores in a
// keyword stand for spaces.
func keywordPattern(kw string) *regexp.Regexp {
	if re, ok := keywordPatterns.Load(kw); ok {
		return re.(*regexp.Regexp)
	}
	term := strings.ReplaceAll(strings.ToLower(kw), "_", " ")
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	keywordPatterns.Store(kw, re)
	return re
}

// MatchKeywords returns the fraction of distinct keywords that occur in
// text as whole words, case-insensitively, and the keywords that did. An
// empty keyword list scores 1.
func MatchKeywords(text string, keywords []string) (float64, []string) {
	distinct := dedupeKeywords(keywords)
	if len(distinct) == 0 {
		return 1.0, nil
	}

	lower := strings.ToLower(text)
	var found []string
	for _, kw := range distinct {
		if keywordPattern(kw).MatchString(lower) {
			found = append(found, kw)
		}
	}
	return float64(len(found)) / float64(len(distinct)), found
}

func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, kw)
	}
	return out
}

// LengthScore rewards answers approaching FullCreditWords words.
func LengthScore(text string) float64 {
	return min(1.0, float64(len(strings.Fields(text)))/FullCreditWords)
}
