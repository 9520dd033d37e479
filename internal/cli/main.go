package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "subburn [dir]",
		Short:        "Generate translated subtitles for every MP4 in a directory and burn them in",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd, dir)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("config", "", "Path to a subburn.toml (defaults to <dir>/subburn.toml when present)")
	root.Flags().String("model", "", "Transcription model size (tiny|base|small|medium|large)")
	root.Flags().String("language", "", "Spoken-language hint for transcription")
	root.Flags().Bool("keep-artifacts", false, "Skip the end-of-run deletion of intermediate subtitle files")
	root.Flags().Bool("dry-run", false, "Log planned work without invoking tools or deleting files")
	root.Flags().Bool("no-color", false, "Disable colored output")
	root.Flags().BoolP("verbose", "v", false, "Verbose logging")

	// Hidden tool-path overrides (internal)
	root.Flags().String("whisper-bin", "", "Whisper binary")
	root.Flags().String("ffmpeg-bin", "", "FFmpeg binary")
	_ = root.Flags().MarkHidden("whisper-bin")
	_ = root.Flags().MarkHidden("ffmpeg-bin")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
