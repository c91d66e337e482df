package config

import (
	"encoding/json"
	"os"
)

// DefaultOutputPath is where the working image is saved.
const DefaultOutputPath = "output_custom_font.png"

// Config holds runtime configuration for the editor.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Font used for every replacement. Empty selects the built-in Go Regular.
	FontPath    string `json:"font_path"`
	MinFontSize int    `json:"min_font_size"`
	MaxFontSize int    `json:"max_font_size"`

	OutputPath string `json:"output_path"`

	// Display
	PollMillis  int `json:"poll_ms"`
	MaxDisplayW int `json:"max_display_w"`
	MaxDisplayH int `json:"max_display_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		FontPath:    "",
		MinFontSize: 5,
		MaxFontSize: 300,
		OutputPath:  DefaultOutputPath,
		PollMillis:  15,
		MaxDisplayW: 1600,
		MaxDisplayH: 900,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.MinFontSize < 1 {
		c.MinFontSize = 5
	}
	if c.MaxFontSize < c.MinFontSize {
		c.MaxFontSize = max(300, c.MinFontSize)
	}
	if c.MaxFontSize > 2000 {
		c.MaxFontSize = 2000
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.PollMillis <= 0 {
		c.PollMillis = 15
	}
	if c.MaxDisplayW < 100 {
		c.MaxDisplayW = 100
	}
	if c.MaxDisplayH < 100 {
		c.MaxDisplayH = 100
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
