package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/essaygen/internal/app"
)

// Execute runs the root command. It returns the command error so that
// main owns the exit code.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	var debug bool

	cmd := &cobra.Command{
		Use:   "essaygen [topic sentence]",
		Short: "essaygen — generate paragraphs of text around a topic sentence",
		Long: `essaygen reads a topic sentence, strips filler words, resolves related
topics through the Datamuse word-association service, and prints randomly
templated paragraphs built from those topics.`,
		Version:      app.BuildVersion(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Topic = args[0]
			}
			if debug {
				opts.LogLevel = "debug"
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config (default: $CONFIG_PATH, then ./config.yaml)")
	cmd.PersistentFlags().IntVar(&opts.Paragraphs, "paragraphs", 0, "number of paragraphs to generate (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "shorthand for --log-level debug")

	return cmd
}
