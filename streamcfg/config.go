package streamcfg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/tinynum/nprand/log"
)

// Config is the yaml-parseable runtime configuration.
type Config struct {
	// UseNumpyRandomStream selects the reference stream for the whole
	// process when true.
	UseNumpyRandomStream bool `yaml:"use_numpy_random_stream"`

	// LogLevel initializes the global logger. Empty keeps the nop logger.
	LogLevel log.Level `yaml:"log_level"`
}

// ParseYAML parses a Config from the given reader.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted before
// parsing, and unknown keys are rejected.
func ParseYAML(reader io.Reader) (Config, error) {
	var cfg Config
	raw, err := io.ReadAll(reader)
	if err != nil {
		return cfg, fmt.Errorf("streamcfg: reading config: %w", err)
	}
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(raw))))
	dec.SetStrict(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("streamcfg: parsing yaml into %T: %w", cfg, err)
	}
	return cfg, nil
}

// ParseFile parses a Config from the file at the given path.
func ParseFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return ParseYAML(f)
}

// Apply installs the configuration: logger first so the flag change is
// observable at debug level.
func Apply(cfg Config) {
	if cfg.LogLevel != "" {
		log.InitLogger(cfg.LogLevel)
	}
	SetUseNumpyStream(cfg.UseNumpyRandomStream)
	log.Infof("streamcfg: configured use_numpy_random_stream=%v", cfg.UseNumpyRandomStream)
}
