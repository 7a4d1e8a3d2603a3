// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default input locations, relative to the product repo checkout.
const (
	DefaultSampleDataDir = "product/sample_data"
	DefaultQuestionsCSV  = "product/packs/saas_core/questions.csv"
	DefaultConfigFile    = "bootstrap-config.yaml"
)

// Config holds all configuration for the bootstrap tool.
type Config struct {
	// Input files
	SampleDataDir string
	QuestionsCSV  string

	// Apply mode (default is dry-run)
	Apply bool

	// Credentials
	Token    string // Explicit integration token (overrides NOTION_TOKEN)
	NoPrompt bool   // Do not prompt interactively for a missing token

	// Notion API
	APIBaseURL string // Empty means the public endpoint

	// Logging & output
	Debug     bool
	LogStdout bool // Log to stderr instead of the log file
	Quiet     bool // Suppress the post-apply summary block
}

// LoadConfig loads configuration from CLI flags, environment variables, and a
// YAML file. Priority: CLI flags > environment variables > YAML file > defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// CLI flags
	sampleDataDir := flag.String("sample-data-dir", "", "Sample data directory (default: "+DefaultSampleDataDir+")")
	questionsCSV := flag.String("questions-csv", "", "Questions CSV path (default: "+DefaultQuestionsCSV+")")
	apply := flag.Bool("apply", false, "Import data via the Notion API (default: dry-run)")
	token := flag.String("token", "", "Notion integration token (overrides NOTION_TOKEN)")
	noPrompt := flag.Bool("no-prompt", false, "Do not prompt for missing credentials")
	apiBaseURL := flag.String("api-base-url", "", "Notion API base URL override")
	configFile := flag.String("config-file", DefaultConfigFile, "Config file path")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logStdout := flag.Bool("log-stdout", false, "Log to stderr instead of the log file")
	quiet := flag.Bool("quiet", false, "Suppress the import summary (useful when run via script)")

	flag.Parse()

	// Load from YAML file if it exists
	if *configFile != "" {
		if err := loadFromYAML(cfg, *configFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnv(cfg)

	// Override with CLI flags (highest priority)
	if *sampleDataDir != "" {
		cfg.SampleDataDir = *sampleDataDir
	}
	if *questionsCSV != "" {
		cfg.QuestionsCSV = *questionsCSV
	}
	if *apply {
		cfg.Apply = true
	}
	if *token != "" {
		cfg.Token = *token
	}
	if *noPrompt {
		cfg.NoPrompt = true
	}
	if *apiBaseURL != "" {
		cfg.APIBaseURL = *apiBaseURL
	}
	if *debug {
		cfg.Debug = true
	}
	if *logStdout {
		cfg.LogStdout = true
	}
	if *quiet {
		cfg.Quiet = true
	}

	// Set defaults
	if cfg.SampleDataDir == "" {
		cfg.SampleDataDir = DefaultSampleDataDir
	}
	if cfg.QuestionsCSV == "" {
		cfg.QuestionsCSV = DefaultQuestionsCSV
	}

	return cfg, nil
}

// loadFromYAML loads configuration from a YAML file.
func loadFromYAML(cfg *Config, filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}

	var yamlCfg struct {
		SampleDataDir string `yaml:"sample_data_dir"`
		QuestionsCSV  string `yaml:"questions_csv"`
		APIBaseURL    string `yaml:"api_base_url"`
		Debug         bool   `yaml:"debug"`
		LogStdout     bool   `yaml:"log_stdout"`
		Quiet         bool   `yaml:"quiet"`
	}

	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return err
	}

	if yamlCfg.SampleDataDir != "" {
		cfg.SampleDataDir = yamlCfg.SampleDataDir
	}
	if yamlCfg.QuestionsCSV != "" {
		cfg.QuestionsCSV = yamlCfg.QuestionsCSV
	}
	if yamlCfg.APIBaseURL != "" {
		cfg.APIBaseURL = yamlCfg.APIBaseURL
	}
	cfg.Debug = yamlCfg.Debug
	cfg.LogStdout = yamlCfg.LogStdout
	cfg.Quiet = yamlCfg.Quiet

	return nil
}

// loadFromEnv loads configuration from environment variables. The integration
// token itself is resolved separately (NOTION_TOKEN, see internal/credentials).
func loadFromEnv(cfg *Config) {
	if val := os.Getenv("NOTION_BOOTSTRAP_SAMPLE_DATA_DIR"); val != "" {
		cfg.SampleDataDir = val
	}
	if val := os.Getenv("NOTION_BOOTSTRAP_QUESTIONS_CSV"); val != "" {
		cfg.QuestionsCSV = val
	}
	if val := os.Getenv("NOTION_BOOTSTRAP_API_BASE_URL"); val != "" {
		cfg.APIBaseURL = val
	}
	if val := os.Getenv("NOTION_BOOTSTRAP_DEBUG"); val != "" {
		cfg.Debug = (val == "true" || val == "1")
	}
	if val := os.Getenv("NOTION_BOOTSTRAP_QUIET"); val != "" {
		cfg.Quiet = (val == "true" || val == "1")
	}
}
