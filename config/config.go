package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/standmaker/stand"
)

// Environment variables read after the config file.
const (
	EnvDataDir  = "STANDMAKER_DATA_DIR"
	EnvLanguage = "STANDMAKER_LANGUAGE"
	EnvOutput   = "STANDMAKER_OUTPUT"
	EnvWatch    = "STANDMAKER_WATCH"
)

// DefaultPath is the config file read when -config is not given.
const DefaultPath = "standmaker.yaml"

// Config holds everything the stand maker reads at startup.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Language string `yaml:"language"` // empty picks the first language of the table
	Output   string `yaml:"output"`
	Watch    bool   `yaml:"watch"`

	Window Window `yaml:"window"`

	// Initial form values
	Stat       string     `yaml:"stat"`
	Appearance stand.Look `yaml:"appearance"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataDir: "data",
		Output:  "stand.svg",
		Watch:   true,
		Window: Window{
			Width:  760,
			Height: 520,
		},
		Stat: "0",
		Appearance: stand.Look{
			Contour:     "#000000",
			PolyFill:    "#ffffff",
			PolyStroke:  "#000000",
			PolyOpacity: "1",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies a .env
// file and the STANDMAKER_* environment variables. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataDir); ok {
		c.DataDir = v
	}
	if v, ok := lookup(EnvLanguage); ok {
		c.Language = v
	}
	if v, ok := lookup(EnvOutput); ok {
		c.Output = v
	}
	if v, ok := lookup(EnvWatch); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWatch, err)
		}
		c.Watch = b
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
