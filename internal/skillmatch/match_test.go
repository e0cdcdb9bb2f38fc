package skillmatch

import "testing"

var bankKeys = []string{"python", "javascript", "react", "nodejs", "sql", "machine_learning", "ci-cd"}

func TestFindBankMatch(t *testing.T) {
	tests := []struct {
		name   string
		skill  string
		want   string
		wantOK bool
	}{
		{"exact", "python", "python", true},
		{"case and space", "  PYTHON ", "python", true},
		{"alias rewrite", "Node.js", "nodejs", true},
		{"user contains key", "React Native", "react", true},
		{"key contains user", "java", "javascript", true},
		{"separator stripped", "machine learning", "machine_learning", true},
		{"separator stripped hyphen", "CI/CD", "", false},
		{"separator stripped space", "ci cd", "ci-cd", true},
		{"no match", "haskell", "", false},
		{"empty", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindBankMatch(tt.skill, bankKeys)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("FindBankMatch(%q) = (%q, %v), want (%q, %v)", tt.skill, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindBankMatch_FirstKeyWins(t *testing.T) {
	// "script" is a substring of both keys; bank order decides.
	keys := []string{"typescript", "javascript"}
	got, ok := FindBankMatch("script", keys)
	if !ok || got != "typescript" {
		t.Fatalf("expected typescript, got %q (%v)", got, ok)
	}

	got, _ = FindBankMatch("script", []string{"javascript", "typescript"})
	if got != "javascript" {
		t.Fatalf("expected javascript, got %q", got)
	}
}

func TestFindBankMatch_ExactBeatsEarlierSubstring(t *testing.T) {
	keys := []string{"javascript", "java"}
	got, _ := FindBankMatch("Java", keys)
	if got != "java" {
		t.Fatalf("expected exact match java, got %q", got)
	}
}

func TestMatchAll(t *testing.T) {
	matched, unmatched := MatchAll([]string{"Python", "Cobol", "SQL", "python"}, bankKeys)
	if len(matched) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matched))
	}
	if matched[0].Key != "python" || matched[1].Key != "sql" || matched[2].Key != "python" {
		t.Fatalf("unexpected matches: %+v", matched)
	}
	if len(unmatched) != 1 || unmatched[0] != "Cobol" {
		t.Fatalf("unexpected unmatched: %v", unmatched)
	}
}
