package holiday

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	applog "datekit/internal/log"
)

// RuleFile is the on-disk YAML shape for a country's holiday rules.
//
//	country: US
//	rules:
//	  - name: New Year's Day
//	    month: 1
//	    day: 1
type RuleFile struct {
	Country string     `yaml:"country"`
	Rules   []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	Name  string `yaml:"name"`
	Month int    `yaml:"month"`
	Day   int    `yaml:"day"`
}

// LoadRules reads a YAML rule file and installs its rules for the named
// country, replacing any existing list. The whole file is validated before
// anything is applied.
func LoadRules(path string) error {
	if path == "" {
		return errors.New("rule file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file RuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("rule file %s: %w", path, err)
	}
	if file.Country == "" {
		return fmt.Errorf("rule file %s: missing country", path)
	}
	if len(file.Rules) == 0 {
		return fmt.Errorf("rule file %s: no rules", path)
	}

	list := make([]Rule, 0, len(file.Rules))
	for _, r := range file.Rules {
		if r.Name == "" {
			return fmt.Errorf("rule file %s: rule with empty name", path)
		}
		if r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("rule file %s: rule %q: month %d out of range", path, r.Name, r.Month)
		}
		if r.Day < 1 || r.Day > 31 {
			return fmt.Errorf("rule file %s: rule %q: day %d out of range", path, r.Name, r.Day)
		}
		list = append(list, Rule{Name: r.Name, Month: time.Month(r.Month), Day: r.Day})
	}

	SetRules(file.Country, list)
	applog.Info("holiday rules loaded", "path", path, "country", normalizeCountry(file.Country), "rule_count", len(list))
	return nil
}

// SaveRules writes a country's current fixed rules to a YAML file. Floating
// rules have no serializable form and are skipped.
func SaveRules(path, country string) error {
	code := normalizeCountry(country)

	mu.RLock()
	list, ok := rules[code]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("no holiday rules for country %q", code)
	}

	file := RuleFile{Country: code}
	for _, r := range list {
		if r.Floating != nil {
			continue
		}
		file.Rules = append(file.Rules, yamlRule{Name: r.Name, Month: int(r.Month), Day: r.Day})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
