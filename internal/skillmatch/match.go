package skillmatch

import "strings"

// FindBankMatch returns the bank key that userSkill refers to.
//
// An exact canonical match wins outright. Otherwise keys are scanned in
// order and the first one that either contains or is contained in the
// canonical skill, or equals it once separators are stripped, is returned.
func FindBankMatch(userSkill string, bankKeys []string) (string, bool) {
	norm := Normalize(userSkill)
	if norm == "" {
		return "", false
	}

	for _, key := range bankKeys {
		if key == norm {
			return key, true
		}
	}

	clean := StripSeparators(norm)
	for _, key := range bankKeys {
		keyNorm := Normalize(key)
		if keyNorm == "" {
			continue
		}
		if strings.Contains(keyNorm, norm) || strings.Contains(norm, keyNorm) {
			return key, true
		}
		if clean != "" && clean == StripSeparators(keyNorm) {
			return key, true
		}
	}

	return "", false
}

// Match is one resolved candidate skill.
type Match struct {
	Skill string
	Key   string
}

// MatchAll resolves every skill against bankKeys, keeping candidate order.
// Unmatched skills are returned separately.
func MatchAll(skills []string, bankKeys []string) (matched []Match, unmatched []string) {
	for _, s := range skills {
		if key, ok := FindBankMatch(s, bankKeys); ok {
			matched = append(matched, Match{Skill: s, Key: key})
			continue
		}
		unmatched = append(unmatched, s)
	}
	return matched, unmatched
}
