package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultReportsDir = "reports/json"
	DefaultOutputPath = "reports/summary.md"
	DefaultFormat     = "markdown"
	DefaultTopChecks  = 30
	DefaultPattern    = "*.json"
)

type Config struct {
	ReportsDir string `yaml:"reports_dir" toml:"reports_dir"`
	OutputPath string `yaml:"output" toml:"output"`
	Format     string `yaml:"format" toml:"format"`
	TopChecks  int    `yaml:"top_checks" toml:"top_checks"`
	Pattern    string `yaml:"pattern" toml:"pattern"`
	Progress   bool   `yaml:"progress" toml:"progress"`
}

func Default() Config {
	return Config{
		ReportsDir: DefaultReportsDir,
		OutputPath: DefaultOutputPath,
		Format:     DefaultFormat,
		TopChecks:  DefaultTopChecks,
		Pattern:    DefaultPattern,
	}
}

// Load reads a YAML or TOML file, picked by extension, over the defaults.
// Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	case ".toml":
		_, err = toml.Decode(string(content), &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
