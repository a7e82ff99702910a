package git

import (
	"bytes"
	"fmt"
	"io"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// DefaultConfig returns the configuration written to a fresh repository:
// a single [core] section.
func DefaultConfig() *format.Config {
	cfg := format.New()
	cfg.Section("core").
		AddOption("repositoryformatversion", "0").
		AddOption("filemode", "false").
		AddOption("bare", "false")
	return cfg
}

// EncodeConfig writes cfg in git's "[section]" / "key = value" format.
func EncodeConfig(w io.Writer, cfg *format.Config) error {
	return format.NewEncoder(w).Encode(cfg)
}

// DecodeConfig parses a git config file.
func DecodeConfig(r io.Reader) (*format.Config, error) {
	cfg := format.New()
	if err := format.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ConfigValues flattens cfg into section name -> key -> value.
// Subsections are not included; a repeated key keeps its last value.
func ConfigValues(cfg *format.Config) map[string]map[string]string {
	values := make(map[string]map[string]string, len(cfg.Sections))
	for _, s := range cfg.Sections {
		opts := make(map[string]string, len(s.Options))
		for _, o := range s.Options {
			opts[o.Key] = o.Value
		}
		values[s.Name] = opts
	}
	return values
}

// ReadConfig parses the repository's config file.
func (r *Repository) ReadConfig() (*format.Config, error) {
	data, err := r.ReadFile("config")
	if err != nil {
		return nil, err
	}
	return DecodeConfig(bytes.NewReader(data))
}
