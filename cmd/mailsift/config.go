package main

import (
	"os"

	"github.com/mailsift/mailsift"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file schema. Every field is
// optional; unset fields leave the engine defaults untouched.
type FileConfig struct {
	MaxResults            int      `yaml:"maxResults"`
	PerSourceCandidateCap int      `yaml:"perSourceCandidateCap"`
	RemoveDuplicates      *bool    `yaml:"removeDuplicates"`
	Deny                  []string `yaml:"deny"`
}

// LoadFileConfig reads and parses a YAML configuration file.
func LoadFileConfig(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyFileConfig overlays set file values onto the engine configuration.
// Out-of-range values are left for the engine to correct.
func ApplyFileConfig(cfg *mailsift.Config, file *FileConfig) {
	if file.MaxResults > 0 {
		cfg.MaxResults = file.MaxResults
	}
	if file.PerSourceCandidateCap > 0 {
		cfg.PerSourceCandidateCap = file.PerSourceCandidateCap
	}
	if file.RemoveDuplicates != nil {
		cfg.RemoveDuplicates = *file.RemoveDuplicates
	}
	cfg.Deny = append(cfg.Deny, file.Deny...)
}
