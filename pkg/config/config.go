package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Render holds the [render] table of a render configuration file.
type Render struct {
	Width        int     `toml:"width"`
	AspectRatio  float64 `toml:"aspect_ratio"`
	Samples      int     `toml:"samples"`
	MaxDepth     int     `toml:"max_depth"`
	Scene        string  `toml:"scene"`
	Output       string  `toml:"output"`
}

// Config is the top-level shape of a render configuration file.
type Config struct {
	Render Render `toml:"render"`
}

// Defaults returns the configuration used when no file is present and no
// CLI override is given.
func Defaults() Config {
	return Config{Render: Render{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		Samples:     250,
		MaxDepth:    4,
		Scene:       "default",
		Output:      "images/image_0.ppm",
	}}
}

// Load reads a TOML configuration file at path. A missing file is not an
// error; it yields Defaults(). A present-but-malformed file is reported as
// an error, since that indicates intent the renderer couldn't honor.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}

	cfg := Defaults()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
