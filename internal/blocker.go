package internal

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule is one URL block pattern
type Rule struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	re      *regexp.Regexp
}

// Blocker matches URLs against an ordered list of regular expressions
type Blocker struct {
	rules []Rule
}

// NewBlocker compiles patterns in order. Blank patterns are ignored.
func NewBlocker(patterns []string) (*Blocker, error) {
	b := &Blocker{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &ParseError{Source: "block rule", Key: p, Err: err}
		}
		b.rules = append(b.rules, Rule{Pattern: p, re: re})
	}
	return b, nil
}

// Match returns the first rule matching url
func (b *Blocker) Match(url string) (Rule, bool) {
	for _, r := range b.rules {
		if r.re.MatchString(url) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns the compiled rules in match order
func (b *Blocker) Rules() []Rule {
	out := make([]Rule, len(b.rules))
	copy(out, b.rules)
	return out
}

type blockerFile struct {
	Patterns []string `yaml:"patterns"`
}

// LoadBlockerPatterns reads a YAML rule file of the form "patterns: [...]"
func LoadBlockerPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	var f blockerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Source: "block rules", Key: path, Err: err}
	}
	return f.Patterns, nil
}
