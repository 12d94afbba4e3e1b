// Package engine implements the seat recommendation core: the keyword
// preference extractor, the multi-factor scoring model, the ranker and
// the external-suggestion reconciler.
package engine

import (
	"strings"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// rule maps a set of trigger keywords to an effect on the profile.
// Rules are evaluated in order against the lower-cased request text;
// every matching rule fires. Keeping them in a table makes the
// extraction vocabulary testable and replaceable without touching the
// scoring logic.
type rule struct {
	name     string
	keywords []string
	apply    func(p *model.PreferenceProfile)
}

var extractionRules = []rule{
	{
		name:     "window",
		keywords: []string{"window", "view", "natural light", "daylight"},
		apply: func(p *model.PreferenceProfile) {
			p.Flags[model.FlagWindowRequested] = true
			p.Features = appendUnique(p.Features, "window")
		},
	},
	{
		name:     "quiet",
		keywords: []string{"quiet", "silence", "focus", "concentrate", "deep work", "heads down"},
		apply: func(p *model.PreferenceProfile) {
			p.WorkStyle = model.WorkStyleQuiet
			p.Collaboration = model.CollabLow
		},
	},
	{
		name:     "collaborative",
		keywords: []string{"collaborate", "collaboration", "team up", "brainstorm", "pair", "together"},
		apply: func(p *model.PreferenceProfile) {
			p.WorkStyle = model.WorkStyleSocial
			p.Collaboration = model.CollabHigh
		},
	},
	{
		name:     "standing desk",
		keywords: []string{"standing", "stand up", "sit-stand"},
		apply: func(p *model.PreferenceProfile) {
			p.Features = appendUnique(p.Features, "standing desk")
		},
	},
	{
		name:     "monitor",
		keywords: []string{"monitor", "screen", "display", "dual"},
		apply: func(p *model.PreferenceProfile) {
			p.Features = appendUnique(p.Features, "monitor")
		},
	},
}

// teamVocabulary maps department names mentioned in a request to the
// canonical team affiliation. A mention overrides the base profile's
// team.
var teamVocabulary = map[string]string{
	"engineering": "Engineering",
	"design":      "Design",
	"marketing":   "Marketing",
	"sales":       "Sales",
	"finance":     "Finance",
	"hr":          "HR",
}

// ExtractPreferences augments a base profile with signals inferred from
// the free-text request. The base profile is cloned, never mutated, and
// the mapping is purely deterministic: no external state is read, so
// the same input always yields the same output.
func ExtractPreferences(request string, base model.PreferenceProfile) model.PreferenceProfile {
	p := base.Clone()
	if p.Flags == nil {
		p.Flags = make(map[string]bool)
	}
	text := strings.ToLower(request)
	for _, r := range extractionRules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				r.apply(&p)
				break
			}
		}
	}
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if team, ok := teamVocabulary[word]; ok {
			p.Team = team
			break
		}
	}
	return p
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, v) {
			return list
		}
	}
	return append(list, v)
}
