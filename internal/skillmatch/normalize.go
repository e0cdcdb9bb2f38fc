// Package skillmatch maps free-form skill names onto canonical question
// bank keys.
package skillmatch

import "strings"

// RewriteRule replaces every occurrence of Pattern with Canonical.
type RewriteRule struct {
	Pattern   string
	Canonical string
}

// rules are applied in order, each to the output of the previous one.
// asp.net must run before .net or it would become "aspdotnet".
var rules = []RewriteRule{
	{"node.js", "nodejs"},
	{"next.js", "nextjs"},
	{"vue.js", "vue"},
	{"express.js", "express"},
	{"spring boot", "springboot"},
	{"asp.net", "aspnet"},
	{".net", "dotnet"},
	{"c#", "csharp"},
	{"c++", "cpp"},
	{"scikit-learn", "scikitlearn"},
	{"scikit learn", "scikitlearn"},
}

// Rules returns a copy of the rewrite table in application order.
func Rules() []RewriteRule {
	out := make([]RewriteRule, len(rules))
	copy(out, rules)
	return out
}

// Apply runs r against s.
func (r RewriteRule) Apply(s string) string {
	return strings.ReplaceAll(s, r.Pattern, r.Canonical)
}

// Normalize lower-cases and trims skill, then applies the rewrite rules.
func Normalize(skill string) string {
	n := strings.ToLower(strings.TrimSpace(skill))
	for _, r := range rules {
		n = r.Apply(n)
	}
	return n
}

var separatorReplacer = strings.NewReplacer(".", "", "-", "", "_", "", " ", "")

// StripSeparators drops '.', '-', '_' and spaces.
func StripSeparators(s string) string {
	return separatorReplacer.Replace(s)
}
