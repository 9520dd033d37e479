package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"subburn/internal/config"
	"subburn/internal/logging"
	"subburn/internal/pipeline"
	"subburn/internal/preflight"
)

func run(cmd *cobra.Command, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, absDir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.NoColor, cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fail fast before touching any file. No cleanup happens on this path.
	if err := preflight.New(cfg, log).Run(ctx); err != nil {
		return err
	}

	_, err = pipeline.New(cfg, log).Run(ctx)
	return err
}

// loadConfig layers sources lowest to highest precedence:
// defaults → TOML file → SUBBURN_* environment → command-line flags.
func loadConfig(cmd *cobra.Command, absDir string) (config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	required := cfgPath != ""
	if cfgPath == "" {
		cfgPath = filepath.Join(absDir, config.FileName)
	}

	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return cfg, err
	}
	cfg.RootDir = absDir
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	if flags.Changed("language") {
		cfg.Language, _ = flags.GetString("language")
	}
	if flags.Changed("whisper-bin") {
		cfg.WhisperBin, _ = flags.GetString("whisper-bin")
	}
	if flags.Changed("ffmpeg-bin") {
		cfg.FFmpegBin, _ = flags.GetString("ffmpeg-bin")
	}
	if flags.Changed("keep-artifacts") {
		cfg.KeepArtifacts, _ = flags.GetBool("keep-artifacts")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	cfg.DryRun, _ = flags.GetBool("dry-run")

	return cfg, nil
}
