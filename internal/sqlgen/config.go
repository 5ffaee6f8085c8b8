package sqlgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// JobsConfig holds the full job configuration loaded from a jobs file.
type JobsConfig struct {
	Jobs map[string]*JobConfig `yaml:"jobs"`
}

// JobConfig defines a single parameter file to compile.
type JobConfig struct {
	// Input is the path of the name=value parameter file. Relative paths
	// are resolved against the directory containing the jobs file.
	Input string `yaml:"input"`

	// Output is the file name written under the output directory.
	// Defaults to "<job>.sql".
	Output string `yaml:"output"`

	// Comment is emitted as a "--" line at the top of the generated SQL
	// and as the doc comment of the generated Go constant.
	Comment string `yaml:"comment"`

	// ChunkSize overrides the rows per INSERT statement for this job.
	ChunkSize int `yaml:"chunk_size"`
}

// LoadConfig reads and parses a jobs file.
func LoadConfig(path string) (*JobsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg JobsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Jobs) == 0 {
		return nil, fmt.Errorf("no jobs defined in %s", path)
	}

	for name, job := range cfg.Jobs {
		if job == nil || job.Input == "" {
			return nil, fmt.Errorf("job %q: input is required", name)
		}
	}

	return &cfg, nil
}
