package categorize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RulesFile is the default location of the rules file inside a project.
const RulesFile = "rules/categorization-rules.yaml"

type rulesDoc struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a rules file. An empty rule list yields DefaultRules.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var doc rulesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if len(doc.Rules) == 0 {
		return DefaultRules(), nil
	}
	if err := ValidateRules(doc.Rules); err != nil {
		return nil, err
	}
	return doc.Rules, nil
}

// SaveRules writes rules to path, creating parent directories.
func SaveRules(path string, rules []Rule) error {
	data, err := yaml.Marshal(rulesDoc{Rules: rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating rules dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}

// Load returns a Categorizer for the rules file at path, or the defaults when
// path is empty or the file does not exist.
func Load(path string) (*Categorizer, error) {
	if path == "" {
		return Default(), nil
	}
	rules, err := LoadRules(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}
