package config

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

// DefaultConfigPath is read when --config is not given.
const DefaultConfigPath = "retext.json"

// Options are the command-line flags. Zero values leave the file config alone.
type Options struct {
	ConfigPath string `short:"c" long:"config" description:"JSON config file" default:"retext.json"`
	FontPath   string `short:"f" long:"font" description:"TrueType/OpenType font used for replacements"`
	OutputPath string `short:"o" long:"output" description:"file written by the save command"`
	MinSize    int    `long:"min-size" description:"smallest font size tried, in pixels"`
	MaxSize    int    `long:"max-size" description:"largest font size tried, in pixels"`
	Screen     bool   `long:"screen" description:"edit a screenshot of the primary display instead of IMAGE"`
	Debug      bool   `long:"debug" description:"debug logging and runtime stats"`
	SaveConfig bool   `long:"save-config" description:"write the effective configuration to --config and exit"`

	Args struct {
		Image string `positional-arg-name:"IMAGE" description:"image file to edit"`
	} `positional-args:"yes"`
}

// ErrNoImage is returned when neither IMAGE nor --screen is given and no
// config is being saved.
var ErrNoImage = errors.New("an IMAGE argument or --screen is required")

// ParseArgs parses command-line arguments (without the program name).
func ParseArgs(args []string) (*Options, error) {
	var opts Options
	p := flags.NewParser(&opts, flags.Default)
	p.Usage = "[OPTIONS] IMAGE"
	if _, err := p.ParseArgs(args); err != nil {
		return nil, err
	}
	if opts.Args.Image == "" && !opts.Screen && !opts.SaveConfig {
		return nil, ErrNoImage
	}
	return &opts, nil
}

// IsHelp reports whether err is the go-flags help request.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// Apply overrides cfg with the flags that were set.
func (o *Options) Apply(cfg *Config) {
	if o == nil || cfg == nil {
		return
	}
	if o.FontPath != "" {
		cfg.FontPath = o.FontPath
	}
	if o.OutputPath != "" {
		cfg.OutputPath = o.OutputPath
	}
	if o.MinSize > 0 {
		cfg.MinFontSize = o.MinSize
	}
	if o.MaxSize > 0 {
		cfg.MaxFontSize = o.MaxSize
	}
	if o.Debug {
		cfg.Debug = true
	}
	_ = cfg.Validate()
}
