package resume

import (
	"regexp"
	"slices"
	"strings"

	"github.com/abhisek/interviewer/internal/skillmatch"
)

// OtherCategory collects priority skills found in the text that the
// catalog does not list.
const OtherCategory = "other"

// Found is the skills detected for one category, in catalog order.
type Found struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Result is the outcome of one detection run.
type Result struct {
	Categories []Found `json:"categories"`

	priority map[string]bool
}

// Total returns the number of detected skills.
func (r *Result) Total() int {
	n := 0
	for _, f := range r.Categories {
		n += len(f.Skills)
	}
	return n
}

// IsPriority reports whether skill was detected as a priority skill.
func (r *Result) IsPriority(skill string) bool {
	return r.priority[skill]
}

// TopSkills returns up to n detected skills, priority skills first, each
// group in category order. n <= 0 returns all.
func (r *Result) TopSkills(n int) []string {
	var prio, other []string
	for _, f := range r.Categories {
		for _, s := range f.Skills {
			switch {
			case r.priority[s]:
				if !slices.Contains(prio, s) {
					prio = append(prio, s)
				}
			case !slices.Contains(other, s):
				other = append(other, s)
			}
		}
	}
	all := append(prio, other...)
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

type catalogSkill struct {
	name     string
	category int
	patterns []*regexp.Regexp
	priority bool
}

type prioritySkill struct {
	name    string
	norm    string
	pattern *regexp.Regexp
}

// Detector finds catalog skills in text. Patterns are compiled once; a
// Detector is safe for concurrent use.
type Detector struct {
	categories []string
	skills     []catalogSkill
	priority   []prioritySkill
}

// NewDetector compiles the catalog's patterns.
func NewDetector(c *Catalog) *Detector {
	d := &Detector{}

	prioSet := make(map[string]bool, len(c.Priority))
	for _, p := range c.Priority {
		p = strings.ToLower(strings.TrimSpace(p))
		prioSet[p] = true
		d.priority = append(d.priority, prioritySkill{
			name:    p,
			norm:    skillmatch.Normalize(p),
			pattern: regexp.MustCompile(bounded(fuzzy(p))),
		})
	}

	for i, cat := range c.Categories {
		d.categories = append(d.categories, cat.Name)
		for _, s := range cat.Skills {
			lower := strings.ToLower(s)
			bare := skillmatch.StripSeparators(lower)

			cs := catalogSkill{
				name:     s,
				category: i,
				patterns: []*regexp.Regexp{regexp.MustCompile(bounded(regexp.QuoteMeta(lower)))},
				priority: prioSet[lower] || prioSet[bare] || prioSet[skillmatch.Normalize(s)],
			}
			if bare != lower && bare != "" {
				cs.patterns = append(cs.patterns, regexp.MustCompile(bounded(regexp.QuoteMeta(bare))))
			}
			d.skills = append(d.skills, cs)
		}
	}
	return d
}

// Detect scans text in two passes: every catalog skill by exact or
// separator-free spelling, then each priority skill not yet found with a
// pattern that tolerates any separators between its words.
func (d *Detector) Detect(text string) *Result {
	text = strings.ToLower(text)

	found := make([][]string, len(d.categories))
	var other []string
	prio := make(map[string]bool)
	foundNorm := make(map[string]bool)

	for _, s := range d.skills {
		if !matchesAny(s.patterns, text) {
			continue
		}
		found[s.category] = append(found[s.category], s.name)
		if s.priority {
			prio[s.name] = true
			foundNorm[skillmatch.Normalize(s.name)] = true
		}
	}

	for _, p := range d.priority {
		if foundNorm[p.norm] || !p.pattern.MatchString(text) {
			continue
		}
		foundNorm[p.norm] = true

		if s, ok := d.lookup(p.norm); ok {
			if !slices.Contains(found[s.category], s.name) {
				found[s.category] = append(found[s.category], s.name)
			}
			prio[s.name] = true
			continue
		}
		other = append(other, p.name)
		prio[p.name] = true
	}

	res := &Result{priority: prio}
	for i, skills := range found {
		if len(skills) > 0 {
			res.Categories = append(res.Categories, Found{Category: d.categories[i], Skills: skills})
		}
	}
	if len(other) > 0 {
		res.Categories = append(res.Categories, Found{Category: OtherCategory, Skills: other})
	}
	return res
}

// lookup finds the catalog skill that normalizes to norm.
func (d *Detector) lookup(norm string) (catalogSkill, bool) {
	for _, s := range d.skills {
		if skillmatch.Normalize(s.name) == norm {
			return s, true
		}
	}
	return catalogSkill{}, false
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// bounded requires the pattern to stand alone: not preceded or followed by
// a letter or digit. \b does not work for skills like "c++" or ".net".
func bounded(pattern string) string {
	return `(?:^|[^a-z0-9])` + pattern + `(?:$|[^a-z0-9])`
}

const separators = ".-_ "

// fuzzy turns "machine learning" into machine[.\-_ ]*learning. A leading
// separator stays literal so ".net" does not match a bare "net".
func fuzzy(skill string) string {
	var b strings.Builder
	inSep := false
	for i, r := range skill {
		if strings.ContainsRune(separators, r) && i > 0 {
			if !inSep {
				b.WriteString(`[.\-_ ]*`)
				inSep = true
			}
			continue
		}
		inSep = false
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return b.String()
}
