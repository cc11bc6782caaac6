// internal/service/discovery/keywords.go

package discovery

import (
	"strings"
)

// nicheKeywords is the closed niche→keywords lookup. The tuning file can
// override or extend individual entries; unrecognized niches take the
// generic set.
var nicheKeywords = map[string][]string{
	"technology":    {"tech", "AI tools", "gadgets", "innovation", "software"},
	"finance":       {"investing", "stocks", "crypto", "money tips", "personal finance"},
	"health":        {"fitness", "wellness", "nutrition", "workout", "mental health"},
	"entertainment": {"movies", "celebrity news", "music", "gaming", "pop culture"},
	"education":     {"study tips", "learning", "science facts", "history", "how to"},
}

var genericKeywords = []string{"trending", "viral", "popular"}

func (s *Service) keywordsForNiche(niche string) []string {
	niche = strings.ToLower(strings.TrimSpace(niche))
	if keywords, ok := s.tuning.NicheKeywords(niche); ok && len(keywords) > 0 {
		return keywords
	}
	if keywords, ok := nicheKeywords[niche]; ok {
		return keywords
	}
	return genericKeywords
}
