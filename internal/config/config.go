// Package config supplies the explicit configuration record for a batch run.
// Defaults cover the common case (current directory, English, base model);
// an optional subburn.toml and SUBBURN_* environment variables override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked for in the root directory when no
// --config flag is given.
const FileName = "subburn.toml"

// ModelSize enumerates the valid transcription model sizes. The set is
// closed: anything else fails validation.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// ModelSizes returns the closed set of valid model sizes.
func ModelSizes() []ModelSize {
	return []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
}

// Config is passed into the pipeline at construction time. There is no
// process-wide mutable state; the root directory is an explicit parameter.
type Config struct {
	RootDir  string `toml:"root_dir"`
	Language string `toml:"language"`
	Model    string `toml:"model"`

	WhisperBin string `toml:"whisper_bin"`
	FFmpegBin  string `toml:"ffmpeg_bin"`
	PythonBin  string `toml:"python_bin"`

	KeepArtifacts bool `toml:"keep_artifacts"`
	DryRun        bool `toml:"-"`
	NoColor       bool `toml:"no_color"`
	Verbose       bool `toml:"verbose"`
}

// Default returns the repository defaults, matching the constants the
// original tooling shipped with.
func Default() Config {
	return Config{
		RootDir:    ".",
		Language:   "English",
		Model:      string(ModelBase),
		WhisperBin: "whisper",
		FFmpegBin:  "ffmpeg",
		PythonBin:  "python3",
	}
}

// Load reads a TOML config file over the defaults. A missing file is only an
// error when required is true (an explicit --config path should not fail
// silently).
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays SUBBURN_* environment variables onto the config. Called
// after Load so the environment (including a .env file) wins over the file.
func (c *Config) ApplyEnv() {
	overlay := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	overlay(&c.Language, "SUBBURN_LANGUAGE")
	overlay(&c.Model, "SUBBURN_MODEL")
	overlay(&c.WhisperBin, "SUBBURN_WHISPER_BIN")
	overlay(&c.FFmpegBin, "SUBBURN_FFMPEG_BIN")
	overlay(&c.PythonBin, "SUBBURN_PYTHON_BIN")
}

// Validate checks the record before any processing starts.
func (c Config) Validate() error {
	if c.RootDir == "" {
		return errors.New("root directory is empty")
	}
	fi, err := os.Stat(c.RootDir)
	if err != nil {
		return fmt.Errorf("stat root directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("root %q is not a directory", c.RootDir)
	}
	if strings.TrimSpace(c.Language) == "" {
		return errors.New("language is empty")
	}
	if !validModel(c.Model) {
		return fmt.Errorf("model %q is not one of %s", c.Model, joinModels())
	}
	return nil
}

func validModel(m string) bool {
	for _, s := range ModelSizes() {
		if ModelSize(m) == s {
			return true
		}
	}
	return false
}

func joinModels() string {
	parts := make([]string, 0, len(ModelSizes()))
	for _, s := range ModelSizes() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, "|")
}
