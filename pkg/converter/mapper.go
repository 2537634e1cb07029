// Package converter maps source ledger labels onto the dashboard vocabulary.
package converter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/ledger"
)

// LabelMapping represents a mapping from a source label to a dashboard label.
type LabelMapping struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// MappingConfig represents the complete label mapping configuration.
type MappingConfig struct {
	Units      []LabelMapping `yaml:"units"`
	Categories []LabelMapping `yaml:"categories"`
	Accounts   []LabelMapping `yaml:"accounts"`
}

// Mapper maps source labels to dashboard labels.
type Mapper struct {
	config     MappingConfig
	units      map[string]string
	categories map[string]string
	accounts   map[string]string
}

// NewMapper creates a new Mapper from a YAML configuration file.
func NewMapper(configPath string) (*Mapper, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}
	return ParseMapper(data)
}

// ParseMapper creates a new Mapper from YAML content.
// Category targets must be Income, Cost of Goods Sold or Expenses.
func ParseMapper(data []byte) (*Mapper, error) {
	var config MappingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for _, m := range config.Categories {
		if !ledger.IsKnownCategory(m.To) {
			return nil, fmt.Errorf("category mapping %q -> %q: target must be one of %q, %q, %q",
				m.From, m.To, ledger.CategoryIncome, ledger.CategoryCOGS, ledger.CategoryExpenses)
		}
	}

	mapper := &Mapper{
		config:     config,
		units:      make(map[string]string),
		categories: make(map[string]string),
		accounts:   make(map[string]string),
	}
	mapper.buildMappingMaps()

	return mapper, nil
}

// buildMappingMaps builds internal mapping maps from configuration.
// A later entry for the same source label wins.
func (m *Mapper) buildMappingMaps() {
	for _, mapping := range m.config.Units {
		m.units[mapping.From] = mapping.To
	}
	for _, mapping := range m.config.Categories {
		m.categories[mapping.From] = mapping.To
	}
	for _, mapping := range m.config.Accounts {
		m.accounts[mapping.From] = mapping.To
	}
}

// Unit returns the mapped unit name, or name itself when unmapped.
func (m *Mapper) Unit(name string) string {
	return lookup(m.units, name)
}

// Category returns the mapped category, or name itself when unmapped.
func (m *Mapper) Category(name string) string {
	return lookup(m.categories, name)
}

// Account returns the mapped account, or name itself when unmapped.
func (m *Mapper) Account(name string) string {
	return lookup(m.accounts, name)
}

// Len returns the number of mapping entries.
func (m *Mapper) Len() int {
	return len(m.units) + len(m.categories) + len(m.accounts)
}

func lookup(table map[string]string, name string) string {
	if mapped, ok := table[name]; ok {
		return mapped
	}
	return name
}
