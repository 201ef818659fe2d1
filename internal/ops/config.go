package ops

import (
	"encoding/json"
	"fmt"
	"os"
)

// Format selects how the input file frames feed blocks.
type Format string

const (
	// FormatHex is one hex-encoded block per line; blank lines and lines
	// starting with '#' are skipped.
	FormatHex Format = "hex"
	// FormatBin is a stream of records, each a big-endian u16 length prefix
	// followed by that many block bytes. The prefix is file framing only,
	// not part of the feed wire format.
	FormatBin Format = "bin"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Input  InputConfig  `json:"input"`
	Decode DecodeConfig `json:"decode"`
	Render *bool        `json:"render"`
}

// InputConfig locates the capture file.
type InputConfig struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

// DecodeConfig sizes the decode stage.
type DecodeConfig struct {
	Workers       int `json:"workers"`
	QueueCapacity int `json:"queueCapacity"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	InputPath     string
	Format        Format
	Workers       int
	QueueCapacity int
	Render        bool
}

// Load reads a JSON config file and resolves it.
func Load(path string) (Loaded, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	return Resolve(cfg)
}

// LoadFile reads a JSON config file without resolving, so callers can apply
// flag overrides first.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Resolve validates a config and fills in defaults. Callers may mutate the
// FileConfig (flag overrides) before resolving.
func Resolve(cfg FileConfig) (Loaded, error) {
	if cfg.Input.Path == "" {
		return Loaded{}, fmt.Errorf("input path is empty")
	}

	format := Format(cfg.Input.Format)
	if format == "" {
		format = FormatHex
	}
	if format != FormatHex && format != FormatBin {
		return Loaded{}, fmt.Errorf("unknown input format: %s", cfg.Input.Format)
	}

	if cfg.Decode.Workers < 0 {
		return Loaded{}, fmt.Errorf("workers must be >= 0")
	}
	workers := cfg.Decode.Workers
	if workers == 0 {
		workers = 1
	}

	if cfg.Decode.QueueCapacity < 0 {
		return Loaded{}, fmt.Errorf("queueCapacity must be >= 0")
	}
	capacity := cfg.Decode.QueueCapacity
	if capacity == 0 {
		capacity = 1024
	}

	render := true
	if cfg.Render != nil {
		render = *cfg.Render
	}

	return Loaded{
		InputPath:     cfg.Input.Path,
		Format:        format,
		Workers:       workers,
		QueueCapacity: capacity,
		Render:        render,
	}, nil
}
