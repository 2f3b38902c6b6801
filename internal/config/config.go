package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Data sources
	DatasetPath         string `mapstructure:"dataset_path" yaml:"dataset_path"`
	RecommendationsPath string `mapstructure:"recommendations_path" yaml:"recommendations_path"`
	OutputDir           string `mapstructure:"output_dir" yaml:"output_dir"`

	// Dataset columns and payload handling
	PayloadColumn    string            `mapstructure:"payload_column" yaml:"payload_column"`
	SearchColumn     string            `mapstructure:"search_column" yaml:"search_column"`
	ExcludeLabels    []string          `mapstructure:"exclude_labels" yaml:"exclude_labels"`
	TermReplacements map[string]string `mapstructure:"term_replacements" yaml:"term_replacements"`

	// Analysis defaults; the effective values go into the pipeline call,
	// never into shared state.
	MinSupport    int    `mapstructure:"min_support" yaml:"min_support"`
	TopN          int    `mapstructure:"top_n" yaml:"top_n"`
	Denominator   string `mapstructure:"denominator" yaml:"denominator"`
	MinEdgeWeight int    `mapstructure:"min_edge_weight" yaml:"min_edge_weight"`
	RelatedTopN   int    `mapstructure:"related_top_n" yaml:"related_top_n"`
	MaxRows       int    `mapstructure:"max_rows" yaml:"max_rows"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.symscreen/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".symscreen")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SYMSCREEN")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("payload_column", "summary")
	v.SetDefault("search_column", "search_term")
	v.SetDefault("exclude_labels", []string{})
	v.SetDefault("min_support", 1)
	v.SetDefault("top_n", 0)
	v.SetDefault("denominator", "min")
	v.SetDefault("min_edge_weight", 2)
	v.SetDefault("related_top_n", 5)
	v.SetDefault("max_rows", 0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".symscreen")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Default returns the built-in configuration without touching disk or env.
func Default() *Global {
	return &Global{
		PayloadColumn: "summary",
		SearchColumn:  "search_term",
		MinSupport:    1,
		TopN:          0,
		Denominator:   "min",
		MinEdgeWeight: 2,
		RelatedTopN:   5,
	}
}
