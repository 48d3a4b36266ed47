// Package categorize assigns spending and income categories to transaction
// descriptions from an ordered keyword table.
package categorize

import (
	"errors"
	"fmt"
	"strings"
)

// Rule lists the keywords that place a description in Category. Keywords are
// substrings matched case-insensitively; their order does not matter.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// Categorizer matches descriptions against rules in declared order.
// The first rule with a matching keyword wins.
type Categorizer struct {
	rules []Rule
}

// New creates a Categorizer from rules, lower-casing every keyword.
func New(rules []Rule) *Categorizer {
	lowered := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		lowered[i] = Rule{Category: r.Category, Keywords: kws}
	}
	return &Categorizer{rules: lowered}
}

// Default returns a Categorizer over DefaultRules.
func Default() *Categorizer {
	return New(DefaultRules())
}

// Categorize returns the category for description, or Unclassified.
func (c *Categorizer) Categorize(description string) string {
	category, _, _ := c.Match(description)
	return category
}

// Match is Categorize that also reports which keyword matched. ok is false
// when nothing matched and category is Unclassified.
func (c *Categorizer) Match(description string) (category, keyword string, ok bool) {
	lower := strings.ToLower(description)
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				return r.Category, kw, true
			}
		}
	}
	return Unclassified, "", false
}

// Categories returns the category names in match order.
func (c *Categorizer) Categories() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Category
	}
	return names
}

// Rules returns a copy of the (lower-cased) rule table.
func (c *Categorizer) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// ErrInvalidRules is wrapped by every ValidateRules failure.
var ErrInvalidRules = errors.New("invalid categorization rules")

// ValidateRules rejects blank or duplicate category names, blank keywords and
// keywords on the Unclassified fallback.
func ValidateRules(rules []Rule) error {
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		name := strings.TrimSpace(r.Category)
		if name == "" {
			return fmt.Errorf("%w: rule %d has no category", ErrInvalidRules, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidRules, name)
		}
		seen[name] = true
		if name == Unclassified && len(r.Keywords) > 0 {
			return fmt.Errorf("%w: %s cannot have keywords", ErrInvalidRules, Unclassified)
		}
		for _, kw := range r.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%w: category %q has a blank keyword", ErrInvalidRules, name)
			}
		}
	}
	return nil
}
