// internal/config/tuning.go

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML overlay for knobs that operators adjust more
// often than code: niche keyword sets and the speech pacing used to size
// scripts. Anything absent keeps the built-in value.
type Tuning struct {
	// Niches overrides or extends the built-in niche→keywords lookup.
	Niches map[string][]string `yaml:"niches"`

	// WordsPerMinute overrides the speech pacing used to size scripts.
	WordsPerMinute int `yaml:"wordsPerMinute"`
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var tuning Tuning
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &tuning, nil
}

// NicheKeywords returns the tuned keyword set for a niche, if any.
func (t *Tuning) NicheKeywords(niche string) ([]string, bool) {
	if t == nil || t.Niches == nil {
		return nil, false
	}
	keywords, ok := t.Niches[niche]
	return keywords, ok
}
