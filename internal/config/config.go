package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"internhunt/internal/domain"
)

type Resume struct {
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

type Config struct {
	DaysLookback      int                              `yaml:"days_lookback"`
	JobTitleKeywords  []string                         `yaml:"job_title_keywords"`
	SpecialtyKeywords []string                         `yaml:"specialty_keywords"`
	Companies         map[string]domain.ProviderConfig `yaml:"companies"`

	// Auxiliary inputs merged before the run.
	CompanyListFile      string `yaml:"company_list_file"`
	AppliedPositionsFile string `yaml:"applied_positions_file"`
	CompanyAPIFile       string `yaml:"company_api_file"`

	// Companies known only by name (no scraper); kept for reference output.
	AdditionalCompanies []string `yaml:"additional_companies"`

	Resumes map[string]Resume `yaml:"resumes"`

	Output struct {
		Directory      string `yaml:"directory"`
		FilenamePrefix string `yaml:"filename_prefix"`
	} `yaml:"output"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DaysLookback <= 0 {
		c.DaysLookback = 7
	}
	if len(c.JobTitleKeywords) == 0 {
		c.JobTitleKeywords = []string{"intern", "internship", "co-op", "coop"}
	}
	if c.Companies == nil {
		c.Companies = map[string]domain.ProviderConfig{}
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "output"
	}
	if c.Output.FilenamePrefix == "" {
		c.Output.FilenamePrefix = "job_matches"
	}
}
